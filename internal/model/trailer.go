// Package model holds the chain data types shared across the service.
package model

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

const (
	// TrailerSize is the wire size of one block trailer in bytes.
	TrailerSize = 160

	// EpochInterval is the block spacing of neogenesis (epoch boundary) blocks.
	EpochInterval = 256
)

// Kind classifies a trailer record for statistics accumulation.
type Kind int

const (
	// KindNeogenesis marks an epoch boundary block. It carries no
	// transactions and checkpoints the ledger supply.
	KindNeogenesis Kind = iota
	// KindPseudo marks a non-boundary block with zero transactions.
	KindPseudo
	// KindNormal marks a mined block carrying transactions.
	KindNormal
)

func (k Kind) String() string {
	switch k {
	case KindNeogenesis:
		return "neogenesis"
	case KindPseudo:
		return "pseudo"
	case KindNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// Trailer is the decoded 160-byte block trailer.
type Trailer struct {
	PreviousHash   [32]byte
	Position       uint64
	MiningFee      uint64
	TxCount        uint32
	StartTime      uint32
	DifficultyBits uint32
	MerkleRoot     [32]byte
	Nonce          [32]byte
	SolveTime      uint32
	BlockHash      [32]byte
}

// Kind classifies the trailer.
func (t Trailer) Kind() Kind {
	if t.Position%EpochInterval == 0 {
		return KindNeogenesis
	}
	if t.TxCount == 0 {
		return KindPseudo
	}
	return KindNormal
}

// SolveDuration returns the seconds spent solving the block. Neogenesis
// blocks are not mined and always report zero.
func (t Trailer) SolveDuration() uint32 {
	if t.Kind() == KindNeogenesis {
		return 0
	}
	return t.SolveTime - t.StartTime
}

// BlockHashHex returns the block hash as lowercase hex.
func (t Trailer) BlockHashHex() string {
	return hex.EncodeToString(t.BlockHash[:])
}

// DecodeTrailer decodes a single little-endian trailer record.
func DecodeTrailer(raw []byte) (Trailer, error) {
	if len(raw) != TrailerSize {
		return Trailer{}, fmt.Errorf("trailer must be %d bytes, got %d", TrailerSize, len(raw))
	}

	var t Trailer
	copy(t.PreviousHash[:], raw[0:32])
	t.Position = binary.LittleEndian.Uint64(raw[32:40])
	t.MiningFee = binary.LittleEndian.Uint64(raw[40:48])
	t.TxCount = binary.LittleEndian.Uint32(raw[48:52])
	t.StartTime = binary.LittleEndian.Uint32(raw[52:56])
	t.DifficultyBits = binary.LittleEndian.Uint32(raw[56:60])
	copy(t.MerkleRoot[:], raw[60:92])
	copy(t.Nonce[:], raw[92:124])
	t.SolveTime = binary.LittleEndian.Uint32(raw[124:128])
	copy(t.BlockHash[:], raw[128:160])
	return t, nil
}

// DecodeTrailers decodes a raw window of concatenated trailer records,
// ordered as received (oldest first, newest last).
func DecodeTrailers(raw []byte) ([]Trailer, error) {
	if len(raw) == 0 || len(raw)%TrailerSize != 0 {
		return nil, fmt.Errorf("trailer window size %d is not a positive multiple of %d", len(raw), TrailerSize)
	}

	trailers := make([]Trailer, 0, len(raw)/TrailerSize)
	for off := 0; off < len(raw); off += TrailerSize {
		t, err := DecodeTrailer(raw[off : off+TrailerSize])
		if err != nil {
			return nil, fmt.Errorf("decode trailer at offset %d: %w", off, err)
		}
		trailers = append(trailers, t)
	}
	return trailers, nil
}

// EncodeTrailer encodes a trailer back to its 160-byte wire form.
func EncodeTrailer(t Trailer) []byte {
	raw := make([]byte, TrailerSize)
	copy(raw[0:32], t.PreviousHash[:])
	binary.LittleEndian.PutUint64(raw[32:40], t.Position)
	binary.LittleEndian.PutUint64(raw[40:48], t.MiningFee)
	binary.LittleEndian.PutUint32(raw[48:52], t.TxCount)
	binary.LittleEndian.PutUint32(raw[52:56], t.StartTime)
	binary.LittleEndian.PutUint32(raw[56:60], t.DifficultyBits)
	copy(raw[60:92], t.MerkleRoot[:])
	copy(raw[92:124], t.Nonce[:])
	binary.LittleEndian.PutUint32(raw[124:128], t.SolveTime)
	copy(raw[128:160], t.BlockHash[:])
	return raw
}

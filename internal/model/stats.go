package model

import (
	"math"
	"strconv"
)

// Rate is a derived metric that may legitimately be infinite or NaN when a
// divisor accumulator is zero. Non-finite values render as JSON null so the
// transport layer never has to special-case them.
type Rate float64

// MarshalJSON renders finite rates as numbers and non-finite rates as null.
func (r Rate) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

// ChainStats is the aggregated statistics result for one target block.
type ChainStats struct {
	Position       uint64 `json:"position"`
	BlockHash      string `json:"blockHash"`
	PreviousHash   string `json:"previousHash"`
	MerkleRoot     string `json:"merkleRoot"`
	Nonce          string `json:"nonce"`
	StartTime      uint32 `json:"startTime"`
	SolveTime      uint32 `json:"solveTime"`
	TxCount        uint32 `json:"transactionCount"`
	DifficultyBits uint32 `json:"difficulty"`
	MiningFee      uint64 `json:"miningFee"`

	BlockTime        uint32 `json:"blockTime"`
	BlockTimeAvg     Rate   `json:"blockTimeAvg"`
	TxCountAvg       Rate   `json:"transactionCountAvg"`
	TxThroughput     Rate   `json:"txThroughput"`
	TxThroughputAvg  Rate   `json:"txThroughputAvg"`
	TransactionFees  uint64 `json:"transactionFees"`
	BlockReward      uint64 `json:"blockReward"`
	TotalBlockReward uint64 `json:"totalBlockReward"`
	DifficultyAvg    Rate   `json:"difficultyAvg"`
	HashRate         Rate   `json:"hashRate"`
	HashRateAvg      Rate   `json:"hashRateAvg"`
	PseudoRateAvg    Rate   `json:"pseudoRateAvg"`

	Supply uint64 `json:"supply"`
	// MaxSupply is signed: the reconciliation subtracts the not-yet-minted
	// remainder of the schedule and can go below zero when the recorded
	// baseline is far behind the projection.
	MaxSupply int64 `json:"maxSupply"`
}

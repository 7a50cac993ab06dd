package chain

import (
	"context"
	"encoding/hex"
	"math"

	"go.uber.org/zap"

	"github.com/fossabot/mochimap-api/internal/mcm"
	"github.com/fossabot/mochimap-api/internal/model"
)

// StatsEngine scans a trailer window and derives block statistics. It is a
// pure computation apart from baseline lookups; one invocation owns all of
// its accumulator state, so concurrent requests need no synchronization.
type StatsEngine struct {
	baselines BaselineStore
	logger    *zap.Logger
}

// NewStatsEngine constructs a StatsEngine.
func NewStatsEngine(baselines BaselineStore, logger *zap.Logger) *StatsEngine {
	return &StatsEngine{
		baselines: baselines,
		logger:    logger,
	}
}

// Compute scans the window newest-to-oldest, accumulating per-class sums and
// resolving the supply baseline at the most recent neogenesis block whose
// checkpoint the store knows. The window is ordered oldest-first with the
// target block last. For absolute requests the window must end exactly at
// the requested position; a mismatch means the source served a stale or
// wrong range and yields ErrUnavailable without scanning. A window whose
// boundaries all miss the store also yields ErrUnavailable.
func (e *StatsEngine) Compute(ctx context.Context, window []model.Trailer, requested int64) (*model.ChainStats, error) {
	if len(window) == 0 {
		return nil, ErrUnavailable
	}

	target := window[len(window)-1]
	if requested >= 0 && target.Position != uint64(requested) {
		e.logger.Warn("trailer window does not end at requested position",
			zap.Int64("requested", requested),
			zap.Uint64("got", target.Position))
		return nil, ErrUnavailable
	}

	var (
		rewardSum     uint64
		pseudoCount   uint64
		timedCount    uint64
		txSum         uint64
		blockTimeSum  uint64
		hashTimeSum   uint64
		hashSum       float64
		difficultySum uint64
		supply        uint64
		maxSupply     int64
		haveSupply    bool
	)

	// The boundary lookup is interleaved with accumulation in one backward
	// pass: rewardSum at the moment a checkpoint resolves covers exactly
	// the mined rewards strictly newer than that boundary, which is what
	// the supply reconstruction needs.
	for i := len(window) - 1; i >= 0; i-- {
		rec := window[i]
		switch rec.Kind() {
		case model.KindNeogenesis:
			amount, err := e.baselines.LedgerBaseline(ctx, rec.Position, rec.BlockHashHex())
			if err != nil {
				// Checkpoints near the head are often not recorded yet;
				// keep searching older boundaries.
				continue
			}
			supply = amount + rewardSum
			maxSupply = int64(mcm.ProjectedSupply(target.Position)) - (int64(mcm.TotalProjectedSupply()) - int64(supply))
			haveSupply = true
		case model.KindPseudo:
			timedCount++
			pseudoCount++
			blockTimeSum += uint64(rec.SolveDuration())
			difficultySum += uint64(rec.DifficultyBits)
		case model.KindNormal:
			solve := uint64(rec.SolveDuration())
			timedCount++
			blockTimeSum += solve
			difficultySum += uint64(rec.DifficultyBits)
			txSum += uint64(rec.TxCount)
			hashTimeSum += solve
			hashSum += math.Exp2(float64(rec.DifficultyBits))
			rewardSum += mcm.Reward(rec.Position) + rec.MiningFee*uint64(rec.TxCount)
		}
		if haveSupply {
			break
		}
	}

	if !haveSupply {
		return nil, ErrUnavailable
	}

	isBoundary := target.Kind() == model.KindNeogenesis
	blockTime := target.SolveDuration()

	stats := &model.ChainStats{
		Position:       target.Position,
		BlockHash:      target.BlockHashHex(),
		PreviousHash:   hex.EncodeToString(target.PreviousHash[:]),
		MerkleRoot:     hex.EncodeToString(target.MerkleRoot[:]),
		Nonce:          hex.EncodeToString(target.Nonce[:]),
		StartTime:      target.StartTime,
		SolveTime:      target.SolveTime,
		TxCount:        target.TxCount,
		DifficultyBits: target.DifficultyBits,
		MiningFee:      target.MiningFee,
		BlockTime:      blockTime,
		Supply:         supply,
		MaxSupply:      maxSupply,
	}

	// Divisions below are intentionally unguarded: a zero divisor yields
	// Inf/NaN under float64 semantics and is rendered as null downstream.
	timed := float64(timedCount)
	bt := float64(blockTime)
	stats.BlockTimeAvg = model.Rate(math.Round(float64(blockTimeSum) / timed))
	stats.TxCountAvg = model.Rate(math.Round(float64(txSum) / timed))
	stats.TxThroughput = model.Rate(math.Round(float64(target.TxCount) / bt))
	stats.TxThroughputAvg = model.Rate(math.Round(float64(txSum) / float64(blockTimeSum)))
	stats.DifficultyAvg = model.Rate(math.Round(float64(difficultySum) / timed))
	stats.HashRateAvg = model.Rate(math.Round(hashSum / float64(hashTimeSum)))
	stats.PseudoRateAvg = model.Rate(math.Round(float64(pseudoCount) / timed))

	if !isBoundary {
		stats.TransactionFees = target.MiningFee * uint64(target.TxCount)
		stats.BlockReward = mcm.Reward(target.Position)
	}
	stats.TotalBlockReward = stats.BlockReward + stats.TransactionFees

	if target.TxCount != 0 {
		stats.HashRate = model.Rate(math.Round(math.Exp2(float64(target.DifficultyBits)) / bt))
	}

	return stats, nil
}

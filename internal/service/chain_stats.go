package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fossabot/mochimap-api/internal/chain"
	"github.com/fossabot/mochimap-api/internal/model"
)

// ChainStatsService serves aggregated statistics for a block position.
type ChainStatsService struct {
	source TrailerSource
	engine StatsEngine
	logger *zap.Logger
}

// NewChainStatsService builds the service with the provided dependencies.
func NewChainStatsService(source TrailerSource, engine StatsEngine, logger *zap.Logger) *ChainStatsService {
	return &ChainStatsService{
		source: source,
		engine: engine,
		logger: logger,
	}
}

// ChainStats resolves the trailer window for position, fetches and decodes
// it, and runs the statistics scan. Non-negative positions are absolute;
// negative positions request the last |position| blocks ending at the head.
// A source or decode failure is reported as chain.ErrUnavailable since the
// caller can only map it to "no statistics for this request".
func (s *ChainStatsService) ChainStats(ctx context.Context, position int64) (*model.ChainStats, error) {
	start, count := chain.ResolveWindow(position)

	raw, err := s.source.FetchTrailers(ctx, start, count)
	if err != nil {
		s.logger.Warn("fetch trailer window failed",
			zap.Int64("start", start),
			zap.Uint64("count", count),
			zap.Error(err))
		return nil, fmt.Errorf("fetch trailer window: %w", chain.ErrUnavailable)
	}

	window, err := model.DecodeTrailers(raw)
	if err != nil {
		s.logger.Warn("decode trailer window failed",
			zap.Int64("start", start),
			zap.Uint64("count", count),
			zap.Error(err))
		return nil, fmt.Errorf("decode trailer window: %w", chain.ErrUnavailable)
	}

	stats, err := s.engine.Compute(ctx, window, position)
	if err != nil {
		if !errors.Is(err, chain.ErrUnavailable) {
			return nil, fmt.Errorf("compute chain stats: %w", err)
		}
		return nil, err
	}
	return stats, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fossabot/mochimap-api/internal/clock"
	"github.com/fossabot/mochimap-api/internal/model"
	"github.com/fossabot/mochimap-api/pkg/batcher"
	"github.com/fossabot/mochimap-api/pkg/safe"
	"github.com/fossabot/mochimap-api/pkg/workerpool"
)

// BaselineIngesterConfig controls polling and persistence behavior.
type BaselineIngesterConfig struct {
	PollInterval  time.Duration
	Workers       int
	FlushSize     int
	FlushInterval time.Duration
}

// DefaultBaselineIngesterConfig returns sane defaults.
func DefaultBaselineIngesterConfig() BaselineIngesterConfig {
	return BaselineIngesterConfig{
		PollInterval:  time.Minute,
		Workers:       4,
		FlushSize:     64,
		FlushInterval: 5 * time.Second,
	}
}

// BaselineIngester follows the chain head and records the ledger total of
// every neogenesis block into the baseline store.
type BaselineIngester struct {
	node   NeogenesisSource
	repo   BaselineRepository
	logger *zap.Logger
	cfg    BaselineIngesterConfig
}

// NewBaselineIngester builds the ingester with the provided dependencies.
func NewBaselineIngester(node NeogenesisSource, repo BaselineRepository, logger *zap.Logger, cfg BaselineIngesterConfig) *BaselineIngester {
	if cfg.PollInterval <= 0 || cfg.Workers <= 0 || cfg.FlushSize <= 0 || cfg.FlushInterval <= 0 {
		cfg = DefaultBaselineIngesterConfig()
	}
	return &BaselineIngester{
		node:   node,
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// Run loops until the context is canceled, syncing missing baselines each
// poll interval. Sync failures are logged and retried on the next tick.
func (s *BaselineIngester) Run(ctx context.Context) error {
	for {
		if err := s.syncOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("baseline sync failed", zap.Error(err))
		}
		if err := clock.SleepWithContext(ctx, s.cfg.PollInterval); err != nil {
			return err
		}
	}
}

func (s *BaselineIngester) syncOnce(ctx context.Context) error {
	head, err := s.chainHead(ctx)
	if err != nil {
		return err
	}

	last, exists, err := s.repo.MaxBaselinePosition(ctx)
	if err != nil {
		return err
	}

	var next uint64
	if exists {
		next = last + model.EpochInterval
	}

	var missing []uint64
	for position := next; position <= head; position += model.EpochInterval {
		missing = append(missing, position)
	}
	if len(missing) == 0 {
		return nil
	}

	s.logger.Info("syncing ledger baselines",
		zap.Uint64("head", head),
		zap.Int("missing", len(missing)))

	flusher := batcher.New(s.logger, s.repo.InsertBaselines, s.cfg.FlushSize, s.cfg.FlushInterval)
	flusher.Start(ctx)
	defer flusher.Stop()

	return workerpool.Process(ctx, s.cfg.Workers, missing, func(ctx context.Context, position uint64) error {
		baseline, err := s.fetchBaseline(ctx, position)
		if err != nil {
			return err
		}
		return flusher.Add(ctx, baseline)
	})
}

// chainHead fetches the newest trailer and returns its position.
func (s *BaselineIngester) chainHead(ctx context.Context) (uint64, error) {
	raw, err := s.node.FetchTrailers(ctx, -1, 1)
	if err != nil {
		return 0, fmt.Errorf("fetch chain head: %w", err)
	}
	trailers, err := model.DecodeTrailers(raw)
	if err != nil {
		return 0, fmt.Errorf("decode chain head: %w", err)
	}
	return trailers[len(trailers)-1].Position, nil
}

func (s *BaselineIngester) fetchBaseline(ctx context.Context, position uint64) (model.LedgerBaseline, error) {
	start, err := safe.Int64(position)
	if err != nil {
		return model.LedgerBaseline{}, fmt.Errorf("baseline position: %w", err)
	}

	raw, err := s.node.FetchTrailers(ctx, start, 1)
	if err != nil {
		return model.LedgerBaseline{}, fmt.Errorf("fetch neogenesis trailer %d: %w", position, err)
	}
	trailers, err := model.DecodeTrailers(raw)
	if err != nil {
		return model.LedgerBaseline{}, fmt.Errorf("decode neogenesis trailer %d: %w", position, err)
	}

	trailer := trailers[0]
	if trailer.Position != position {
		return model.LedgerBaseline{}, fmt.Errorf("neogenesis trailer mismatch: want %d, got %d", position, trailer.Position)
	}
	if trailer.Kind() != model.KindNeogenesis {
		return model.LedgerBaseline{}, fmt.Errorf("block %d is not a neogenesis block", position)
	}

	amount, err := s.node.NeogenesisSupply(ctx, position)
	if err != nil {
		return model.LedgerBaseline{}, fmt.Errorf("fetch neogenesis supply %d: %w", position, err)
	}

	return model.LedgerBaseline{
		Position:   position,
		BlockHash:  trailer.BlockHashHex(),
		Amount:     amount,
		RecordedAt: time.Now().UTC(),
	}, nil
}

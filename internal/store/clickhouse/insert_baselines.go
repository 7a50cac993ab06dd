package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/fossabot/mochimap-api/internal/model"
)

// InsertBaselines stores ledger baseline rows in ClickHouse.
func (r *Repository) InsertBaselines(ctx context.Context, baselines []model.LedgerBaseline) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_baselines", err, start)
	}()

	if len(baselines) == 0 {
		return nil
	}

	const query = `
INSERT INTO ledger_baselines (
	position,
	block_hash,
	amount,
	recorded_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare baselines batch: %w", err)
	}

	for _, baseline := range baselines {
		if err = batch.Append(
			baseline.Position,
			baseline.BlockHash,
			baseline.Amount,
			baseline.RecordedAt,
		); err != nil {
			return fmt.Errorf("append baseline: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert baselines: %w", err)
	}
	return nil
}

package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// LedgerBaseline returns the recorded ledger amount for the neogenesis block
// identified by position and block hash. Unknown checkpoints yield
// ErrBaselineNotFound.
func (r *Repository) LedgerBaseline(ctx context.Context, position uint64, blockHash string) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("ledger_baseline", err, start)
	}()

	const query = `
SELECT amount
FROM ledger_baselines
WHERE position = ? AND block_hash = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, position, blockHash)
	if err != nil {
		return 0, fmt.Errorf("query ledger baseline: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		err = ErrBaselineNotFound
		return 0, err
	}

	var amount uint64
	if err = rows.Scan(&amount); err != nil {
		return 0, fmt.Errorf("scan ledger baseline: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate ledger baseline: %w", err)
	}

	return amount, nil
}

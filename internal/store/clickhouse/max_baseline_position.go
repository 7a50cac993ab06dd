package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// MaxBaselinePosition returns the highest neogenesis position with a
// recorded baseline. The second return is false when no rows exist yet.
func (r *Repository) MaxBaselinePosition(ctx context.Context) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_baseline_position", err, start)
	}()

	const query = `
SELECT coalesce(max(position), toUInt64(0)) AS max_position, count() AS total
FROM ledger_baselines`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return 0, false, fmt.Errorf("query max baseline position: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		err = fmt.Errorf("max baseline position not found")
		return 0, false, err
	}

	var (
		position uint64
		total    uint64
	)
	if err = rows.Scan(&position, &total); err != nil {
		return 0, false, fmt.Errorf("scan max baseline position: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max baseline position: %w", err)
	}

	return position, total > 0, nil
}

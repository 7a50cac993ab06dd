package model

import "time"

// LedgerBaseline is the ledger supply checkpoint recorded for one
// neogenesis block, stored in ClickHouse.
type LedgerBaseline struct {
	Position   uint64
	BlockHash  string
	Amount     uint64
	RecordedAt time.Time
}

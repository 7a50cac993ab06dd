// Package chain implements the chain statistics core: window resolution and
// the trailer scan that derives per-block metrics and supply.
package chain

import (
	"context"
	"errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BaselineStore looks up the ledger supply checkpoint recorded for a
	// neogenesis block. Implementations return ErrBaselineNotFound (or any
	// error) for unknown checkpoints; the engine treats every failure as
	// "keep searching".
	BaselineStore interface {
		LedgerBaseline(ctx context.Context, position uint64, blockHash string) (uint64, error)
	}
)

// ErrUnavailable reports that statistics cannot be computed for the request:
// the supplied window was empty, did not end at the requested position, or
// contained no resolvable supply checkpoint.
var ErrUnavailable = errors.New("chain statistics unavailable")

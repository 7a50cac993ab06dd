// Package service wires the trailer source, the statistics engine and the
// baseline store together behind the API and ingester entrypoints.
package service

import (
	"context"

	"github.com/fossabot/mochimap-api/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TrailerSource fetches raw trailer windows from a full node. A
	// negative start is resolved by the node against its current head.
	TrailerSource interface {
		FetchTrailers(ctx context.Context, start int64, count uint64) ([]byte, error)
	}

	// NeogenesisSource additionally serves neogenesis ledger totals.
	NeogenesisSource interface {
		TrailerSource
		NeogenesisSupply(ctx context.Context, position uint64) (uint64, error)
	}

	// StatsEngine derives statistics from a decoded trailer window.
	StatsEngine interface {
		Compute(ctx context.Context, window []model.Trailer, requested int64) (*model.ChainStats, error)
	}

	// BaselineRepository persists ledger baselines for the ingester.
	BaselineRepository interface {
		MaxBaselinePosition(ctx context.Context) (uint64, bool, error)
		InsertBaselines(ctx context.Context, baselines []model.LedgerBaseline) error
	}
)

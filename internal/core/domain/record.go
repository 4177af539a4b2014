package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdRecord is one line of ad delivery input. A zero Impressions value is
// treated as "no impressions" and yields zero expenditure.
type AdRecord struct {
	Platform    Platform
	AdType      AdType
	Impressions int64
}

// ExpenditureResult is an AdRecord augmented with its computed cost.
type ExpenditureResult struct {
	AdRecord
	Expenditure decimal.Decimal
}

// Summary aggregates expenditure over a batch of results.
type Summary struct {
	Impressions int64
	Total       decimal.Decimal
	ByPlatform  map[Platform]decimal.Decimal
}

// Report is a persisted batch computation.
type Report struct {
	ID        uuid.UUID
	Results   []ExpenditureResult
	Total     decimal.Decimal
	CreatedAt time.Time
}

package port

import (
	"context"

	"github.com/google/uuid"

	"adspend/internal/core/domain"
)

// ExpenditureUseCase defines the business operations exposed by the
// expenditure engine. It is the primary port into the application domain.
type ExpenditureUseCase interface {
	// Compute prices every record in input order. It fails on the first
	// record whose platform, ad type or rate is unknown and returns no
	// partial results.
	Compute(ctx context.Context, records []domain.AdRecord) ([]domain.ExpenditureResult, error)

	// CreateReport computes the batch and stores it as a report. It returns
	// ErrReportsDisabled when no report storage is configured.
	CreateReport(ctx context.Context, records []domain.AdRecord) (*domain.Report, error)

	// GetReport returns a stored report or ErrReportNotFound.
	GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error)

	// RateCard returns the rate entries in effect.
	RateCard() []domain.RateEntry
}

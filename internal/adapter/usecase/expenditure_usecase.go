package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
	"adspend/internal/core/pricing"
	"adspend/internal/metrics"
)

// ExpenditureUseCase provides business logic for pricing ad records and
// storing the priced batches as reports. It implements port.ExpenditureUseCase.
type ExpenditureUseCase struct {
	svc     *pricing.ExpenditureService
	card    *pricing.RateCard
	repo    port.ReportRepository
	metrics *metrics.Metrics
	logger  *slog.Logger

	now func() time.Time
}

// NewExpenditureUseCase wires the use case. repo may be nil, in which case
// report operations return port.ErrReportsDisabled.
func NewExpenditureUseCase(
	card *pricing.RateCard,
	repo port.ReportRepository,
	m *metrics.Metrics,
	logger *slog.Logger,
) *ExpenditureUseCase {
	return &ExpenditureUseCase{
		svc:     pricing.NewExpenditureService(pricing.NewRegistry(card)),
		card:    card,
		repo:    repo,
		metrics: m,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Compute prices the batch. It is fail-fast: the first bad record aborts
// the whole batch.
func (u *ExpenditureUseCase) Compute(_ context.Context, records []domain.AdRecord) ([]domain.ExpenditureResult, error) {
	start := time.Now()
	results, err := u.svc.ComputeAll(records)
	if err != nil {
		u.metrics.ObserveFailure(err)
		u.logger.Debug("batch rejected", slog.Int("records", len(records)), slog.Any("error", err))
		return nil, err
	}
	u.metrics.ObserveBatch(results, time.Since(start))
	return results, nil
}

// CreateReport computes the batch and persists it under a fresh id.
func (u *ExpenditureUseCase) CreateReport(ctx context.Context, records []domain.AdRecord) (*domain.Report, error) {
	if u.repo == nil {
		return nil, port.ErrReportsDisabled
	}
	results, err := u.Compute(ctx, records)
	if err != nil {
		return nil, err
	}
	report := domain.Report{
		ID:        uuid.New(),
		Results:   results,
		Total:     pricing.Summarize(results).Total,
		CreatedAt: u.now(),
	}
	if err = u.repo.SaveReport(ctx, report); err != nil {
		return nil, err
	}
	u.logger.Info("report created",
		slog.String("id", report.ID.String()),
		slog.Int("records", len(results)),
		slog.String("total", report.Total.String()))
	return &report, nil
}

// GetReport loads a stored report.
func (u *ExpenditureUseCase) GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	if u.repo == nil {
		return nil, port.ErrReportsDisabled
	}
	return u.repo.GetReport(ctx, id)
}

// RateCard returns the entries of the rate card in effect.
func (u *ExpenditureUseCase) RateCard() []domain.RateEntry {
	return u.card.Entries()
}

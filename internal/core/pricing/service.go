package pricing

import (
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

// ExpenditureService prices batches of ad records.
type ExpenditureService struct {
	registry *Registry
}

// NewExpenditureService returns a service dispatching through reg.
func NewExpenditureService(reg *Registry) *ExpenditureService {
	return &ExpenditureService{registry: reg}
}

// ComputeAll prices every record in order. The input slice is left
// untouched. The first failing record aborts the batch with a RecordError
// wrapping the cause, and no results are returned.
func (s *ExpenditureService) ComputeAll(records []domain.AdRecord) ([]domain.ExpenditureResult, error) {
	results := make([]domain.ExpenditureResult, 0, len(records))
	for i, rec := range records {
		calc, err := s.registry.Resolve(string(rec.Platform))
		if err != nil {
			return nil, &domain.RecordError{Index: i, Record: rec, Err: err}
		}
		exp, err := calc.ComputeExpenditure(rec)
		if err != nil {
			return nil, &domain.RecordError{Index: i, Record: rec, Err: err}
		}
		results = append(results, domain.ExpenditureResult{AdRecord: rec, Expenditure: exp})
	}
	return results, nil
}

// Summarize totals expenditure and impressions over results.
func Summarize(results []domain.ExpenditureResult) domain.Summary {
	sum := domain.Summary{
		Total:      decimal.Zero,
		ByPlatform: make(map[domain.Platform]decimal.Decimal),
	}
	for _, r := range results {
		sum.Impressions += r.Impressions
		sum.Total = sum.Total.Add(r.Expenditure)
		sum.ByPlatform[r.Platform] = sum.ByPlatform[r.Platform].Add(r.Expenditure)
	}
	return sum
}

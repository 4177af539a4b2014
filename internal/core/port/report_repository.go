package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"adspend/internal/core/domain"
)

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrReportsDisabled = errors.New("report storage is not configured")
)

// ReportRepository defines the persistence layer for computed reports. It
// is an outbound port; implementations must be safe for concurrent use.
type ReportRepository interface {
	// SaveReport stores the report and its result lines atomically.
	SaveReport(ctx context.Context, report domain.Report) error
	// GetReport loads a report with its results in their original order.
	// Unknown ids yield ErrReportNotFound.
	GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error)
}

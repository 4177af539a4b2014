package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// ReportRepository implements port.ReportRepository using pgxpool for PostgreSQL.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a new repository instance.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// SaveReport inserts the report header and its lines in one transaction.
func (r *ReportRepository) SaveReport(ctx context.Context, report domain.Report) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO reports (id, total, created_at) VALUES ($1, $2, $3)`,
		report.ID, report.Total.String(), report.CreatedAt)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for i, res := range report.Results {
		batch.Queue(`INSERT INTO report_lines (report_id, position, platform, ad_type, impressions, expenditure)
VALUES ($1,$2,$3,$4,$5,$6)`,
			report.ID, i, string(res.Platform), string(res.AdType), res.Impressions, res.Expenditure.String())
	}
	err = tx.SendBatch(ctx, batch).Close()
	return err
}

// GetReport returns a report with its lines ordered by position.
func (r *ReportRepository) GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	var (
		report domain.Report
		total  string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, total::text, created_at FROM reports WHERE id = $1`, id).
		Scan(&report.ID, &total, &report.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	if report.Total, err = decimal.NewFromString(total); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
        SELECT platform, ad_type, impressions, expenditure::text
        FROM report_lines
        WHERE report_id = $1
        ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	report.Results, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExpenditureResult, error) {
		var (
			res         domain.ExpenditureResult
			platform    string
			adType      string
			expenditure string
		)
		if err := row.Scan(&platform, &adType, &res.Impressions, &expenditure); err != nil {
			return res, err
		}
		res.Platform = domain.Platform(platform)
		res.AdType = domain.AdType(adType)
		exp, err := decimal.NewFromString(expenditure)
		if err != nil {
			return res, err
		}
		res.Expenditure = exp
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

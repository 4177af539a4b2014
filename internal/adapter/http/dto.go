package httpadapter

import (
	"time"

	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

// amount encodes a decimal as a bare JSON number without losing digits.
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

// recordRequest is one input ad record. "type" and "ad_type" are accepted
// interchangeably; impressions may be omitted.
type recordRequest struct {
	Platform    string `json:"platform"`
	Type        string `json:"type"`
	AdType      string `json:"ad_type"`
	Impressions *int64 `json:"impressions"`
}

func (r recordRequest) toDomain() domain.AdRecord {
	adType := r.Type
	if adType == "" {
		adType = r.AdType
	}
	rec := domain.AdRecord{Platform: domain.Platform(r.Platform), AdType: domain.AdType(adType)}
	if r.Impressions != nil {
		rec.Impressions = *r.Impressions
	}
	return rec
}

func toRecords(in []recordRequest) []domain.AdRecord {
	out := make([]domain.AdRecord, len(in))
	for i, r := range in {
		out[i] = r.toDomain()
	}
	return out
}

type resultResponse struct {
	Platform    string `json:"platform"`
	Type        string `json:"type"`
	Impressions int64  `json:"impressions"`
	Expenditure amount `json:"expenditure"`
}

func toResults(in []domain.ExpenditureResult) []resultResponse {
	out := make([]resultResponse, len(in))
	for i, r := range in {
		out[i] = resultResponse{
			Platform:    string(r.Platform),
			Type:        string(r.AdType),
			Impressions: r.Impressions,
			Expenditure: amount(r.Expenditure),
		}
	}
	return out
}

type computeResponse struct {
	Results []resultResponse `json:"results"`
	Total   amount           `json:"total"`
}

type reportResponse struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Results   []resultResponse `json:"results"`
	Total     amount           `json:"total"`
}

func toReport(r *domain.Report) reportResponse {
	return reportResponse{
		ID:        r.ID.String(),
		CreatedAt: r.CreatedAt,
		Results:   toResults(r.Results),
		Total:     amount(r.Total),
	}
}

type rateResponse struct {
	Platform string `json:"platform"`
	AdType   string `json:"ad_type"`
	CPM      amount `json:"cpm"`
}

// errorResponse describes a rejected batch. Index, Platform and AdType are
// set when the failure can be tied to a record.
type errorResponse struct {
	Error    string `json:"error"`
	Index    *int   `json:"index,omitempty"`
	Platform string `json:"platform,omitempty"`
	AdType   string `json:"ad_type,omitempty"`
}

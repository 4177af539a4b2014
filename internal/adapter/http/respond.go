package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

var errTrailingData = errors.New("unexpected data after records")

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// decodeRecords reads a JSON array of records from the request body.
func (h *Handler) decodeRecords(w http.ResponseWriter, r *http.Request) ([]domain.AdRecord, bool) {
	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	var req []recordRequest
	dec := json.NewDecoder(body)
	err := dec.Decode(&req)
	if err == nil && dec.More() {
		err = errTrailingData
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return nil, false
		}
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return nil, false
	}
	return toRecords(req), true
}

// writeError maps use case errors to HTTP statuses. Pricing failures are
// the caller's fault and answer 422 with the offending record; storage
// failures are logged and answer 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error()}

	var recErr *domain.RecordError
	if errors.As(err, &recErr) {
		idx := recErr.Index
		resp.Index = &idx
		resp.Platform = string(recErr.Record.Platform)
		resp.AdType = string(recErr.Record.AdType)
	}

	var (
		platformErr *domain.UnsupportedPlatformError
		adTypeErr   *domain.UnsupportedAdTypeError
		rateErr     *domain.RateNotFoundError
		impErr      *domain.InvalidImpressionsError
	)
	switch {
	case errors.As(err, &platformErr), errors.As(err, &adTypeErr),
		errors.As(err, &rateErr), errors.As(err, &impErr):
		h.writeJSON(w, http.StatusUnprocessableEntity, resp)
	case errors.Is(err, port.ErrReportNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrReportsDisabled):
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleCreateReport prices the posted records and stores them as a
// report. It answers 201 with the stored report, or 503 when report
// storage is not configured.
func (h *Handler) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	records, ok := h.decodeRecords(w, r)
	if !ok {
		return
	}
	report, err := h.svc.CreateReport(r.Context(), records)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/reports/"+report.ID.String())
	h.writeJSON(w, http.StatusCreated, toReport(report))
}

// handleGetReport returns a stored report by its {id} path parameter.
func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid report id"})
		return
	}
	report, err := h.svc.GetReport(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toReport(report))
}

package httpadapter

import (
	"net/http"

	"adspend/internal/core/pricing"
)

// handleCompute prices a JSON array of ad records and returns them in the
// same order with an expenditure field, plus the batch total. A record
// with an unknown platform, ad type or rate rejects the whole batch with
// HTTP 422; malformed JSON yields HTTP 400.
func (h *Handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	records, ok := h.decodeRecords(w, r)
	if !ok {
		return
	}
	results, err := h.svc.Compute(r.Context(), records)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, computeResponse{
		Results: toResults(results),
		Total:   amount(pricing.Summarize(results).Total),
	})
}

// handleRateCard lists the CPM rates in effect.
func (h *Handler) handleRateCard(w http.ResponseWriter, _ *http.Request) {
	entries := h.svc.RateCard()
	resp := make([]rateResponse, len(entries))
	for i, e := range entries {
		resp[i] = rateResponse{Platform: string(e.Platform), AdType: string(e.AdType), CPM: amount(e.CPM)}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

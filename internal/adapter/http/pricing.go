package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handleQuote prices a CampaignPricingRequest. Malformed bodies and invalid
// fields produce HTTP 400; a store failure produces HTTP 500.
func (h *Handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	var body CampaignPricingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.metrics.RecordQuoteError("decode")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req, err := body.Resolve()
	if err != nil {
		h.metrics.RecordQuoteError("validation")
		h.writeError(w, "resolve quote request", err)
		return
	}

	result, err := h.pricing.CalculatePrice(r.Context(), req)
	if err != nil {
		h.metrics.RecordQuoteError("pricing")
		h.writeError(w, "calculate price", err)
		return
	}
	h.metrics.RecordQuote(req.Coverage.String(), result.TotalPrice, result.Breakdown.DefaultRateApplied)
	h.logger.Debug("quote",
		slog.String("industry", req.IndustryType),
		slog.String("coverage", req.Coverage.String()),
		slog.Float64("total", result.TotalPrice),
	)
	h.writeJSON(w, http.StatusOK, result)
}

// handleReach estimates the audience of a coverage selection given as query
// parameters.
func (h *Handler) handleReach(w http.ResponseWriter, r *http.Request) {
	req, err := parseReachQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, "parse reach query", err)
		return
	}
	reach, err := h.pricing.EstimateReach(r.Context(), req)
	if err != nil {
		h.writeError(w, "estimate reach", err)
		return
	}
	h.writeJSON(w, http.StatusOK, reach)
}

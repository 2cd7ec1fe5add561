package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleCampaignQuote prices a stored campaign. Unknown ids give HTTP 404.
func (h *Handler) handleCampaignQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	result, err := h.billing.QuoteCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, "quote campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// handleCreateInvoices generates and stores the monthly invoices of a
// campaign. It answers 201 with the invoices, 404 for unknown campaigns
// and 409 when the campaign was invoiced before.
func (h *Handler) handleCreateInvoices(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	invoices, err := h.billing.InvoiceCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, "invoice campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, invoices)
}

func (h *Handler) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	invoices, err := h.billing.ListInvoices(r.Context(), id)
	if err != nil {
		h.writeError(w, "list invoices", err)
		return
	}
	h.writeJSON(w, http.StatusOK, invoices)
}

// campaignID parses the {id} path parameter, writing HTTP 400 when it is
// not a positive integer.
func campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

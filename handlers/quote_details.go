package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"tourcrm/templates"
)

// quoteDetailKeys are the trip-level form fields the details form posts.
var quoteDetailKeys = []string{
	"school_name", "party_leader", "destination", "accommodation", "board",
	"date_out", "date_back", "pax", "free_places",
	"exchange_rate", "markup", "free_place_ratio", "euro_amount",
}

// HandleQuoteDetails applies the trip-level inputs and returns the
// refreshed results block.
// Route: POST /quotes/{id}/details
func HandleQuoteDetails(store *QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := store.Get(e.Request.PathValue("id"))
		if q == nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		fields := make(map[string]string)
		for _, key := range quoteDetailKeys {
			if e.Request.Form.Has(key) {
				fields[key] = e.Request.FormValue(key)
			}
		}
		q.SetDetails(fields)

		return templates.QuoteResults(q).Render(e.Request.Context(), e.Response)
	}
}

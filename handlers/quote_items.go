package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"tourcrm/services"
	"tourcrm/templates"
)

// HandleQuoteItemAdd appends a new removable cost item.
// Route: POST /quotes/{id}/items
func HandleQuoteItemAdd(store *QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := store.Get(e.Request.PathValue("id"))
		if q == nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		draft := services.ItemDraft{
			Description:      strings.TrimSpace(e.Request.FormValue("description")),
			Unit:             e.Request.FormValue("unit"),
			PricePerUnit:     parseFormFloat(e.Request.FormValue("price_per_unit")),
			QuantityStudents: parseFormInt(e.Request.FormValue("quantity_students")),
			QuantityAdults:   parseFormInt(e.Request.FormValue("quantity_adults")),
			DaysRequired:     parseFormInt(e.Request.FormValue("days_required")),
		}

		if !q.AddItem(draft) {
			return ErrorToast(e, http.StatusBadRequest, "Item needs a description and at least one participant")
		}

		return templates.QuoteResults(q).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteItemUpdate applies a single field edit to a cost item.
// Route: PATCH /quotes/{id}/items/{itemId}
func HandleQuoteItemUpdate(store *QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := store.Get(e.Request.PathValue("id"))
		if q == nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		itemID := e.Request.PathValue("itemId")
		field := e.Request.FormValue("field")
		value := e.Request.FormValue("value")

		if !q.UpdateItem(itemID, field, value) {
			return ErrorToast(e, http.StatusBadRequest, "Cannot apply that edit")
		}

		return templates.QuoteResults(q).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteItemDelete removes a non-fixed cost item.
// Route: DELETE /quotes/{id}/items/{itemId}
func HandleQuoteItemDelete(store *QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := store.Get(e.Request.PathValue("id"))
		if q == nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		if !q.RemoveItem(e.Request.PathValue("itemId")) {
			return ErrorToast(e, http.StatusBadRequest, "Standard checklist items cannot be removed")
		}

		return templates.QuoteResults(q).Render(e.Request.Context(), e.Response)
	}
}

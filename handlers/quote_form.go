package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/templates"
)

// HandleQuoteList renders the open quote sessions.
// Route: GET /quotes
func HandleQuoteList(store *QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var items []templates.QuoteListItem
		for _, q := range store.List() {
			items = append(items, templates.QuoteListItem{
				ID:          q.ID,
				SchoolName:  q.SchoolName,
				Destination: q.Destination,
				Pax:         q.Pax,
				NetTotal:    q.Totals.NetTotal,
			})
		}

		data := templates.QuoteListData{Quotes: items}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteListContent(data)
		} else {
			headerData := GetHeaderData(e.Request)
			sidebarData := GetSidebarData(e.Request)
			component = templates.QuoteListPage(data, headerData, sidebarData)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteNew starts a fresh quotation and redirects to its editor.
// Route: GET /quotes/new
func HandleQuoteNew(store *QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := store.New()

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/quotes/"+q.ID)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/quotes/"+q.ID)
	}
}

// HandleQuoteView renders the quote editor.
// Route: GET /quotes/{id}
func HandleQuoteView(store *QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := store.Get(e.Request.PathValue("id"))
		if q == nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteFormContent(q)
		} else {
			headerData := GetHeaderData(e.Request)
			sidebarData := GetSidebarData(e.Request)
			component = templates.QuoteFormPage(q, headerData, sidebarData)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteDiscard drops an open quotation.
// Route: DELETE /quotes/{id}
func HandleQuoteDiscard(store *QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if store.Get(id) == nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}
		store.Delete(id)

		SetToast(e, "success", "Quote discarded")
		if e.Request.Header.Get("HX-Request") == "true" {
			return HandleQuoteList(store)(e)
		}
		return e.Redirect(http.StatusFound, "/quotes")
	}
}

package handlers

import (
	"log"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/templates"
)

func HandleSupplierList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		searchQuery := strings.TrimSpace(e.Request.URL.Query().Get("q"))
		categoryFilter := strings.TrimSpace(e.Request.URL.Query().Get("category"))

		filter := "id != ''"
		params := map[string]any{}
		if searchQuery != "" {
			filter = "(name ~ {:q} || city ~ {:q} || specialties ~ {:q})"
			params["q"] = searchQuery
		}
		if categoryFilter != "" {
			filter += " && category = {:category}"
			params["category"] = categoryFilter
		}

		records, err := app.FindRecordsByFilter("suppliers", filter, "name", 0, 0, params)
		if err != nil {
			log.Printf("supplier_list: could not query suppliers: %v", err)
			records = nil
		}

		var items []templates.SupplierListItem
		for _, rec := range records {
			items = append(items, templates.SupplierListItem{
				ID:            rec.Id,
				Name:          rec.GetString("name"),
				Category:      rec.GetString("category"),
				City:          rec.GetString("city"),
				ContactPerson: rec.GetString("contact_person"),
				Phone:         rec.GetString("phone"),
				Email:         rec.GetString("email"),
			})
		}

		data := templates.SupplierListData{
			Suppliers:      items,
			SearchQuery:    searchQuery,
			CategoryFilter: categoryFilter,
			TotalCount:     len(items),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.SupplierListContent(data)
		} else {
			headerData := GetHeaderData(e.Request)
			sidebarData := GetSidebarData(e.Request)
			component = templates.SupplierListPage(data, headerData, sidebarData)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

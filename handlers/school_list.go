package handlers

import (
	"log"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/templates"
)

func HandleSchoolList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		searchQuery := strings.TrimSpace(e.Request.URL.Query().Get("q"))

		var records []*core.Record
		var err error

		if searchQuery != "" {
			records, err = app.FindRecordsByFilter(
				"schools",
				"name ~ {:q} || city ~ {:q} || postcode ~ {:q}",
				"name",
				0, 0,
				map[string]any{"q": searchQuery},
			)
		} else {
			records, err = app.FindRecordsByFilter(
				"schools",
				"id != ''",
				"name",
				0, 0,
			)
		}
		if err != nil {
			log.Printf("school_list: could not query schools: %v", err)
			records = nil
		}

		var items []templates.SchoolListItem
		for _, rec := range records {
			items = append(items, templates.SchoolListItem{
				ID:            rec.Id,
				Name:          rec.GetString("name"),
				City:          rec.GetString("city"),
				Postcode:      rec.GetString("postcode"),
				Phone:         rec.GetString("phone"),
				Email:         rec.GetString("email"),
				ContactPerson: rec.GetString("contact_person"),
			})
		}

		data := templates.SchoolListData{
			Schools:     items,
			SearchQuery: searchQuery,
			TotalCount:  len(items),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.SchoolListContent(data)
		} else {
			headerData := GetHeaderData(e.Request)
			sidebarData := GetSidebarData(e.Request)
			component = templates.SchoolListPage(data, headerData, sidebarData)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

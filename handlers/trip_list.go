package handlers

import (
	"log"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/templates"
)

func HandleTripList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		searchQuery := strings.TrimSpace(e.Request.URL.Query().Get("q"))

		var records []*core.Record
		var err error

		if searchQuery != "" {
			records, err = app.FindRecordsByFilter(
				"trips",
				"title ~ {:q} || destination ~ {:q}",
				"start_date",
				0, 0,
				map[string]any{"q": searchQuery},
			)
		} else {
			records, err = app.FindRecordsByFilter(
				"trips",
				"id != ''",
				"start_date",
				0, 0,
			)
		}
		if err != nil {
			log.Printf("trip_list: could not query trips: %v", err)
			records = nil
		}

		var items []templates.TripListItem
		for _, rec := range records {
			items = append(items, templates.TripListItem{
				ID:              rec.Id,
				Title:           rec.GetString("title"),
				Destination:     rec.GetString("destination"),
				DurationDays:    rec.GetInt("duration_days"),
				BasePrice:       rec.GetFloat("base_price"),
				MaxParticipants: rec.GetInt("max_participants"),
				StartDate:       rec.GetString("start_date"),
				EndDate:         rec.GetString("end_date"),
			})
		}

		data := templates.TripListData{
			Trips:       items,
			SearchQuery: searchQuery,
			TotalCount:  len(items),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.TripListContent(data)
		} else {
			headerData := GetHeaderData(e.Request)
			sidebarData := GetSidebarData(e.Request)
			component = templates.TripListPage(data, headerData, sidebarData)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

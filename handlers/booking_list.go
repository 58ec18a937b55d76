package handlers

import (
	"log"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/templates"
)

func HandleBookingList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		statusFilter := strings.TrimSpace(e.Request.URL.Query().Get("status"))

		var records []*core.Record
		var err error

		if statusFilter != "" {
			records, err = app.FindRecordsByFilter(
				"bookings",
				"status = {:status}",
				"-updated",
				0, 0,
				map[string]any{"status": statusFilter},
			)
		} else {
			records, err = app.FindRecordsByFilter(
				"bookings",
				"id != ''",
				"-updated",
				0, 0,
			)
		}
		if err != nil {
			log.Printf("booking_list: could not query bookings: %v", err)
			records = nil
		}

		var items []templates.BookingListItem
		for _, rec := range records {
			items = append(items, bookingListItem(app, rec))
		}

		data := templates.BookingListData{
			Bookings:     items,
			StatusFilter: statusFilter,
			TotalCount:   len(items),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.BookingListContent(data)
		} else {
			headerData := GetHeaderData(e.Request)
			sidebarData := GetSidebarData(e.Request)
			component = templates.BookingListPage(data, headerData, sidebarData)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func bookingListItem(app *pocketbase.PocketBase, rec *core.Record) templates.BookingListItem {
	return templates.BookingListItem{
		ID:               rec.Id,
		SchoolName:       lookupName(app, "schools", rec.GetString("school"), "name"),
		TripTitle:        lookupName(app, "trips", rec.GetString("trip"), "title"),
		Status:           rec.GetString("status"),
		ParticipantCount: rec.GetInt("participant_count"),
		TotalPrice:       rec.GetFloat("total_price"),
		Updated:          rec.GetString("updated"),
	}
}

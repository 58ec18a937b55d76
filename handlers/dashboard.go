package handlers

import (
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/services"
	"tourcrm/templates"
)

func HandleDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		stats := services.LoadDashboardStats(app, time.Now())

		data := templates.DashboardData{
			SchoolCount:     stats.SchoolCount,
			TripCount:       stats.TripCount,
			SupplierCount:   stats.SupplierCount,
			BookingCount:    stats.BookingCount,
			ActiveBookings:  stats.ActiveBookings,
			PipelineByStage: stats.PipelineByStage,
		}

		for _, rec := range stats.UpcomingTrips {
			data.UpcomingTrips = append(data.UpcomingTrips, templates.DashboardTripItem{
				ID:          rec.Id,
				Title:       rec.GetString("title"),
				Destination: rec.GetString("destination"),
				StartDate:   rec.GetString("start_date"),
			})
		}

		for _, rec := range stats.RecentBookings {
			data.RecentBookings = append(data.RecentBookings, templates.DashboardBookingItem{
				ID:         rec.Id,
				SchoolName: lookupName(app, "schools", rec.GetString("school"), "name"),
				TripTitle:  lookupName(app, "trips", rec.GetString("trip"), "title"),
				Status:     rec.GetString("status"),
				TotalPrice: rec.GetFloat("total_price"),
			})
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.DashboardContent(data)
		} else {
			headerData := GetHeaderData(e.Request)
			sidebarData := GetSidebarData(e.Request)
			component = templates.DashboardPage(data, headerData, sidebarData)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// lookupName resolves a relation id to a display field, falling back to
// the raw id when the record is gone.
func lookupName(app *pocketbase.PocketBase, collection, id, field string) string {
	if id == "" {
		return ""
	}
	rec, err := app.FindRecordById(collection, id)
	if err != nil {
		return id
	}
	return rec.GetString(field)
}

package services

import (
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// DashboardStats aggregates the headline figures shown on the dashboard.
type DashboardStats struct {
	SchoolCount     int
	TripCount       int
	SupplierCount   int
	BookingCount    int
	ExcursionCount  int
	ActiveBookings  int
	PipelineByStage map[string]int
	UpcomingTrips   []*core.Record
	RecentBookings  []*core.Record
}

// LoadDashboardStats queries entity counts, the booking pipeline grouped by
// status, the next departing trips and the most recently updated bookings.
// Individual query failures degrade to zero values rather than failing the
// whole dashboard.
func LoadDashboardStats(app *pocketbase.PocketBase, now time.Time) *DashboardStats {
	stats := &DashboardStats{
		PipelineByStage: make(map[string]int, len(BookingStatuses)),
	}

	stats.SchoolCount = countRecords(app, "schools", "id != ''", nil)
	stats.TripCount = countRecords(app, "trips", "id != ''", nil)
	stats.SupplierCount = countRecords(app, "suppliers", "id != ''", nil)
	stats.ExcursionCount = countRecords(app, "excursions", "id != ''", nil)

	for _, status := range BookingStatuses {
		n := countRecords(app, "bookings", "status = {:status}",
			map[string]any{"status": status})
		stats.PipelineByStage[status] = n
		stats.BookingCount += n
		if status != "quote_lost" && status != "cancelled" && status != "completed" {
			stats.ActiveBookings += n
		}
	}

	if col, err := app.FindCollectionByNameOrId("trips"); err == nil {
		records, err := app.FindRecordsByFilter(col,
			"start_date >= {:today}", "start_date", 5, 0,
			map[string]any{"today": now.Format("2006-01-02")},
		)
		if err == nil {
			stats.UpcomingTrips = records
		}
	}

	if col, err := app.FindCollectionByNameOrId("bookings"); err == nil {
		records, err := app.FindRecordsByFilter(col, "id != ''", "-updated", 5, 0)
		if err == nil {
			stats.RecentBookings = records
		}
	}

	return stats
}

// countRecords returns how many records of a collection match a filter,
// or 0 when the collection or query is unavailable.
func countRecords(app *pocketbase.PocketBase, collection, filter string, params map[string]any) int {
	col, err := app.FindCollectionByNameOrId(collection)
	if err != nil {
		return 0
	}
	records, err := app.FindRecordsByFilter(col, filter, "", 0, 0, params)
	if err != nil {
		return 0
	}
	return len(records)
}

package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"tourcrm/services"
)

// DashboardTripItem is one row in the upcoming departures panel.
type DashboardTripItem struct {
	ID          string
	Title       string
	Destination string
	StartDate   string
}

// DashboardBookingItem is one row in the recent bookings panel.
type DashboardBookingItem struct {
	ID         string
	SchoolName string
	TripTitle  string
	Status     string
	TotalPrice float64
}

// DashboardData aggregates everything the dashboard page renders.
type DashboardData struct {
	SchoolCount     int
	TripCount       int
	SupplierCount   int
	BookingCount    int
	ActiveBookings  int
	PipelineByStage map[string]int
	UpcomingTrips   []DashboardTripItem
	RecentBookings  []DashboardBookingItem
}

// DashboardContent renders the dashboard body for HTMX fragment swaps.
func DashboardContent(data DashboardData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"dashboard\">\n<h1>Dashboard</h1>\n")

	b.WriteString("<div class=\"stat-cards\">\n")
	writeStatCard(&b, "Schools", data.SchoolCount, "/schools")
	writeStatCard(&b, "Trips", data.TripCount, "/trips")
	writeStatCard(&b, "Suppliers", data.SupplierCount, "/suppliers")
	writeStatCard(&b, "Active Bookings", data.ActiveBookings, "/bookings")
	b.WriteString("</div>\n")

	b.WriteString("<div class=\"dashboard-panels\">\n")

	b.WriteString("<section class=\"panel\">\n<h2>Booking Pipeline</h2>\n<table class=\"pipeline\">\n<tbody>\n")
	for _, status := range services.BookingStatuses {
		count := data.PipelineByStage[status]
		fmt.Fprintf(&b, "<tr><td>%s</td><td class=\"num\">%d</td></tr>\n",
			esc(services.BookingStatusLabel(status)), count)
	}
	b.WriteString("</tbody>\n</table>\n</section>\n")

	b.WriteString("<section class=\"panel\">\n<h2>Upcoming Departures</h2>\n")
	if len(data.UpcomingTrips) == 0 {
		b.WriteString("<p class=\"empty\">No upcoming departures.</p>\n")
	} else {
		b.WriteString("<ul class=\"trip-list\">\n")
		for _, trip := range data.UpcomingTrips {
			fmt.Fprintf(&b, "<li><a href=\"/trips/%s/edit\">%s</a> <span class=\"muted\">%s · departs %s</span></li>\n",
				attr(trip.ID), esc(trip.Title), esc(trip.Destination), esc(trip.StartDate))
		}
		b.WriteString("</ul>\n")
	}
	b.WriteString("</section>\n")

	b.WriteString("<section class=\"panel\">\n<h2>Recent Bookings</h2>\n")
	if len(data.RecentBookings) == 0 {
		b.WriteString("<p class=\"empty\">No bookings yet.</p>\n")
	} else {
		b.WriteString("<ul class=\"booking-list\">\n")
		for _, bk := range data.RecentBookings {
			fmt.Fprintf(&b, "<li><a href=\"/bookings/%s\">%s</a> <span class=\"muted\">%s</span> <span class=\"status status-%s\">%s</span> <span class=\"num\">%s</span></li>\n",
				attr(bk.ID), esc(bk.SchoolName), esc(bk.TripTitle), attr(bk.Status),
				esc(services.BookingStatusLabel(bk.Status)), services.FormatGBP(bk.TotalPrice))
		}
		b.WriteString("</ul>\n")
	}
	b.WriteString("</section>\n")

	b.WriteString("</div>\n</section>\n")
	return raw(b.String())
}

// DashboardPage renders the full dashboard document.
func DashboardPage(data DashboardData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Dashboard", DashboardContent(data), header, sidebar)
}

func writeStatCard(b *strings.Builder, label string, count int, href string) {
	fmt.Fprintf(b, "<a class=\"stat-card\" href=\"%s\"><span class=\"stat-value\">%d</span><span class=\"stat-label\">%s</span></a>\n",
		attr(href), count, esc(label))
}

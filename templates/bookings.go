package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"tourcrm/services"
)

// BookingListItem is one row of the bookings table.
type BookingListItem struct {
	ID               string
	SchoolName       string
	TripTitle        string
	Status           string
	ParticipantCount int
	TotalPrice       float64
	Updated          string
}

// BookingListData carries the bookings list view state.
type BookingListData struct {
	Bookings     []BookingListItem
	StatusFilter string
	TotalCount   int
}

// SchoolOption and TripOption populate the booking form dropdowns.
type SchoolOption struct {
	ID   string
	Name string
}

type TripOption struct {
	ID    string
	Title string
}

// BookingFormData carries the create/edit form state.
type BookingFormData struct {
	ID                  string
	SchoolID            string
	TripID              string
	Status              string
	ParticipantCount    string
	TotalPrice          string
	ContactEmail        string
	ContactPhone        string
	SpecialRequirements string
	Notes               string
	Schools             []SchoolOption
	Trips               []TripOption
	Errors              map[string]string
}

// BookingActivityItem is one entry of the booking activity log.
type BookingActivityItem struct {
	Type        string
	Description string
	Created     string
}

// BookingExcursionItem is one excursion attached to a booking, with its
// provider chase status.
type BookingExcursionItem struct {
	ID               string
	ExcursionName    string
	SupplierName     string
	ParticipantCount int
	TotalPrice       float64
	ProviderStatus   string
}

// BookingDetailData aggregates the booking detail view.
type BookingDetailData struct {
	Booking             BookingListItem
	ContactEmail        string
	ContactPhone        string
	SpecialRequirements string
	Notes               string
	Excursions          []BookingExcursionItem
	Activities          []BookingActivityItem
}

// BookingListContent renders the bookings table for HTMX fragment swaps.
func BookingListContent(data BookingListData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"list-page\" id=\"booking-list\">\n")
	b.WriteString("<div class=\"list-header\">\n<h1>Bookings</h1>\n")
	b.WriteString("<a class=\"btn primary\" href=\"/bookings/create\">Add Booking</a>\n</div>\n")

	b.WriteString("<form class=\"search\" hx-get=\"/bookings\" hx-target=\"#booking-list\" hx-swap=\"outerHTML\">\n")
	b.WriteString("<select name=\"status\" hx-get=\"/bookings\" hx-target=\"#booking-list\" hx-swap=\"outerHTML\">")
	b.WriteString("<option value=\"\">All statuses</option>")
	for _, status := range services.BookingStatuses {
		selected := ""
		if status == data.StatusFilter {
			selected = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%s\"%s>%s</option>", attr(status), selected, esc(services.BookingStatusLabel(status)))
	}
	b.WriteString("</select>\n</form>\n")

	if len(data.Bookings) == 0 {
		b.WriteString("<p class=\"empty\">No bookings found.</p>\n")
	} else {
		b.WriteString("<table class=\"data-table\">\n<thead><tr>" +
			"<th>School</th><th>Trip</th><th>Status</th><th>Pax</th><th>Total</th><th></th>" +
			"</tr></thead>\n<tbody>\n")
		for _, bk := range data.Bookings {
			fmt.Fprintf(&b, "<tr>"+
				"<td><a href=\"/bookings/%s\">%s</a></td>"+
				"<td>%s</td><td><span class=\"status status-%s\">%s</span></td>"+
				"<td class=\"num\">%d</td><td class=\"num\">%s</td>"+
				"<td class=\"row-actions\">"+
				"<button class=\"btn danger\" hx-delete=\"/bookings/%s\" hx-confirm=\"Delete this booking?\" hx-target=\"#booking-list\" hx-swap=\"outerHTML\">Delete</button>"+
				"</td></tr>\n",
				attr(bk.ID), esc(bk.SchoolName),
				esc(bk.TripTitle), attr(bk.Status), esc(services.BookingStatusLabel(bk.Status)),
				bk.ParticipantCount, services.FormatGBP(bk.TotalPrice),
				attr(bk.ID))
		}
		b.WriteString("</tbody>\n</table>\n")
		fmt.Fprintf(&b, "<p class=\"muted\">%d bookings</p>\n", data.TotalCount)
	}
	b.WriteString("</section>\n")
	return raw(b.String())
}

// BookingListPage renders the full bookings list document.
func BookingListPage(data BookingListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Bookings", BookingListContent(data), header, sidebar)
}

// BookingFormContent renders the create/edit form for HTMX fragment swaps.
func BookingFormContent(data BookingFormData) templ.Component {
	action := "/bookings"
	heading := "Add Booking"
	if data.ID != "" {
		action = fmt.Sprintf("/bookings/%s/save", data.ID)
		heading = "Edit Booking"
	}

	var b strings.Builder
	b.WriteString("<section class=\"form-page\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(heading))
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\" hx-post=\"%s\" hx-target=\"#main-content\">\n", attr(action), attr(action))

	b.WriteString("<label class=\"field\"><span>School</span><select name=\"school\" required>")
	b.WriteString("<option value=\"\">Select a school…</option>")
	for _, s := range data.Schools {
		selected := ""
		if s.ID == data.SchoolID {
			selected = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%s\"%s>%s</option>", attr(s.ID), selected, esc(s.Name))
	}
	b.WriteString("</select>" + fieldError(data.Errors, "school") + "</label>\n")

	b.WriteString("<label class=\"field\"><span>Trip</span><select name=\"trip\" required>")
	b.WriteString("<option value=\"\">Select a trip…</option>")
	for _, t := range data.Trips {
		selected := ""
		if t.ID == data.TripID {
			selected = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%s\"%s>%s</option>", attr(t.ID), selected, esc(t.Title))
	}
	b.WriteString("</select>" + fieldError(data.Errors, "trip") + "</label>\n")

	b.WriteString("<label class=\"field\"><span>Status</span><select name=\"status\">")
	for _, status := range services.BookingStatuses {
		selected := ""
		if status == data.Status {
			selected = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%s\"%s>%s</option>", attr(status), selected, esc(services.BookingStatusLabel(status)))
	}
	b.WriteString("</select></label>\n")

	writeNumberField(&b, "participant_count", "Participants", data.ParticipantCount, "1", data.Errors)
	writeNumberField(&b, "total_price", "Total Price (£)", data.TotalPrice, "0.01", data.Errors)
	writeTextField(&b, "contact_email", "Contact Email", data.ContactEmail, false, data.Errors)
	writeTextField(&b, "contact_phone", "Contact Phone", data.ContactPhone, false, data.Errors)
	writeTextArea(&b, "special_requirements", "Special Requirements", data.SpecialRequirements)
	writeTextArea(&b, "notes", "Notes", data.Notes)

	b.WriteString("<div class=\"form-actions\">\n")
	b.WriteString("<a class=\"btn\" href=\"/bookings\">Cancel</a>\n")
	b.WriteString("<button type=\"submit\" class=\"btn primary\">Save</button>\n")
	b.WriteString("</div>\n</form>\n</section>\n")
	return raw(b.String())
}

// BookingFormPage renders the full create/edit document.
func BookingFormPage(data BookingFormData, header HeaderData, sidebar SidebarData) templ.Component {
	title := "Add Booking"
	if data.ID != "" {
		title = "Edit Booking"
	}
	return Page(title, BookingFormContent(data), header, sidebar)
}

// BookingDetailContent renders the booking detail view: summary, attached
// excursions with provider chase status, and the activity log.
func BookingDetailContent(data BookingDetailData) templ.Component {
	bk := data.Booking

	var b strings.Builder
	b.WriteString("<section class=\"detail-page\" id=\"booking-detail\">\n")
	fmt.Fprintf(&b, "<div class=\"list-header\">\n<h1>%s — %s</h1>\n", esc(bk.SchoolName), esc(bk.TripTitle))
	fmt.Fprintf(&b, "<a class=\"btn\" href=\"/bookings/%s/edit\">Edit</a>\n</div>\n", attr(bk.ID))

	fmt.Fprintf(&b, "<p><span class=\"status status-%s\">%s</span> · %d participants · %s</p>\n",
		attr(bk.Status), esc(services.BookingStatusLabel(bk.Status)), bk.ParticipantCount, services.FormatGBP(bk.TotalPrice))
	if data.ContactEmail != "" || data.ContactPhone != "" {
		fmt.Fprintf(&b, "<p class=\"muted\">Contact: %s %s</p>\n", esc(data.ContactEmail), esc(data.ContactPhone))
	}
	if data.SpecialRequirements != "" {
		fmt.Fprintf(&b, "<p><strong>Special requirements:</strong> %s</p>\n", esc(data.SpecialRequirements))
	}
	if data.Notes != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", esc(data.Notes))
	}

	b.WriteString("<section class=\"subsection\">\n<h2>Excursions</h2>\n")
	if len(data.Excursions) == 0 {
		b.WriteString("<p class=\"empty\">No excursions attached.</p>\n")
	} else {
		b.WriteString("<table class=\"data-table\">\n<thead><tr>" +
			"<th>Excursion</th><th>Supplier</th><th>Pax</th><th>Total</th><th>Provider Status</th>" +
			"</tr></thead>\n<tbody>\n")
		for _, ex := range data.Excursions {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td class=\"num\">%d</td><td class=\"num\">%s</td><td>",
				esc(ex.ExcursionName), esc(ex.SupplierName), ex.ParticipantCount, services.FormatGBP(ex.TotalPrice))
			fmt.Fprintf(&b, "<select hx-patch=\"/bookings/%s/excursions/%s/status\" hx-trigger=\"change\" hx-swap=\"none\" name=\"provider_status\">",
				attr(bk.ID), attr(ex.ID))
			for _, status := range services.ProviderStatuses {
				selected := ""
				if status == ex.ProviderStatus {
					selected = " selected"
				}
				fmt.Fprintf(&b, "<option value=\"%s\"%s>%s</option>", attr(status), selected, esc(services.ProviderStatusLabels[status]))
			}
			b.WriteString("</select></td></tr>\n")
		}
		b.WriteString("</tbody>\n</table>\n")
	}
	b.WriteString("</section>\n")

	b.WriteString(renderActivityLog(bk.ID, data.Activities))
	b.WriteString("</section>\n")
	return raw(b.String())
}

// BookingActivityLog renders just the activity-log section, swapped in
// after a new entry is logged.
func BookingActivityLog(bookingID string, activities []BookingActivityItem) templ.Component {
	return raw(renderActivityLog(bookingID, activities))
}

func renderActivityLog(bookingID string, activities []BookingActivityItem) string {
	var b strings.Builder
	b.WriteString("<section class=\"subsection\" id=\"activity-log\">\n<h2>Activity Log</h2>\n")
	fmt.Fprintf(&b, "<form hx-post=\"/bookings/%s/activities\" hx-target=\"#activity-log\" hx-swap=\"outerHTML\">\n", attr(bookingID))
	b.WriteString("<select name=\"type\">")
	for _, at := range services.ActivityTypes {
		fmt.Fprintf(&b, "<option value=\"%s\">%s</option>", attr(at), esc(services.ActivityTypeLabels[at]))
	}
	b.WriteString("</select>\n")
	b.WriteString("<input type=\"text\" name=\"description\" placeholder=\"What happened?\" required>\n")
	b.WriteString("<button type=\"submit\" class=\"btn primary\">Log</button>\n</form>\n")

	if len(activities) == 0 {
		b.WriteString("<p class=\"empty\">No activity recorded yet.</p>\n")
	} else {
		b.WriteString("<ul class=\"activity-list\">\n")
		for _, a := range activities {
			fmt.Fprintf(&b, "<li><span class=\"activity-type\">%s</span> %s <span class=\"muted\">%s</span></li>\n",
				esc(services.ActivityTypeLabels[a.Type]), esc(a.Description), esc(a.Created))
		}
		b.WriteString("</ul>\n")
	}
	b.WriteString("</section>\n")
	return b.String()
}

// BookingDetailPage renders the full booking detail document.
func BookingDetailPage(data BookingDetailData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Booking", BookingDetailContent(data), header, sidebar)
}

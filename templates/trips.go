package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"tourcrm/services"
)

// TripListItem is one row of the trips table.
type TripListItem struct {
	ID              string
	Title           string
	Destination     string
	DurationDays    int
	BasePrice       float64
	MaxParticipants int
	StartDate       string
	EndDate         string
}

// TripListData carries the trips list view state.
type TripListData struct {
	Trips       []TripListItem
	SearchQuery string
	TotalCount  int
}

// TripFormData carries the create/edit form state.
type TripFormData struct {
	ID              string
	Title           string
	Destination     string
	Description     string
	DurationDays    string
	BasePrice       string
	MaxParticipants string
	StartDate       string
	EndDate         string
	Itinerary       string
	Errors          map[string]string
}

// TripExcursionItem is one excursion row on a trip form.
type TripExcursionItem struct {
	ID           string
	Name         string
	SupplierName string
	Price        float64
}

// TripListContent renders the trips table for HTMX fragment swaps.
func TripListContent(data TripListData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"list-page\" id=\"trip-list\">\n")
	b.WriteString("<div class=\"list-header\">\n<h1>Trips</h1>\n")
	b.WriteString("<a class=\"btn primary\" href=\"/trips/create\">Add Trip</a>\n</div>\n")

	fmt.Fprintf(&b, "<form class=\"search\" hx-get=\"/trips\" hx-target=\"#trip-list\" hx-swap=\"outerHTML\">"+
		"<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Search trips…\" hx-trigger=\"keyup changed delay:300ms\" hx-get=\"/trips\" hx-target=\"#trip-list\" hx-swap=\"outerHTML\"></form>\n",
		attr(data.SearchQuery))

	if len(data.Trips) == 0 {
		b.WriteString("<p class=\"empty\">No trips found.</p>\n")
	} else {
		b.WriteString("<table class=\"data-table\">\n<thead><tr>" +
			"<th>Title</th><th>Destination</th><th>Days</th><th>Base Price</th><th>Departs</th><th>Max Pax</th><th></th>" +
			"</tr></thead>\n<tbody>\n")
		for _, t := range data.Trips {
			fmt.Fprintf(&b, "<tr>"+
				"<td><a href=\"/trips/%s/edit\">%s</a></td>"+
				"<td>%s</td><td class=\"num\">%d</td><td class=\"num\">%s</td><td>%s</td><td class=\"num\">%d</td>"+
				"<td class=\"row-actions\">"+
				"<button class=\"btn danger\" hx-delete=\"/trips/%s\" hx-confirm=\"Delete %s?\" hx-target=\"#trip-list\" hx-swap=\"outerHTML\">Delete</button>"+
				"</td></tr>\n",
				attr(t.ID), esc(t.Title),
				esc(t.Destination), t.DurationDays, services.FormatGBP(t.BasePrice), esc(t.StartDate), t.MaxParticipants,
				attr(t.ID), attr(t.Title))
		}
		b.WriteString("</tbody>\n</table>\n")
		fmt.Fprintf(&b, "<p class=\"muted\">%d trips</p>\n", data.TotalCount)
	}
	b.WriteString("</section>\n")
	return raw(b.String())
}

// TripListPage renders the full trips list document.
func TripListPage(data TripListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Trips", TripListContent(data), header, sidebar)
}

// TripFormContent renders the create/edit form, with the trip's excursions
// listed below when editing.
func TripFormContent(data TripFormData, excursions []TripExcursionItem) templ.Component {
	action := "/trips"
	heading := "Add Trip"
	if data.ID != "" {
		action = fmt.Sprintf("/trips/%s/save", data.ID)
		heading = "Edit Trip"
	}

	var b strings.Builder
	b.WriteString("<section class=\"form-page\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(heading))
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\" hx-post=\"%s\" hx-target=\"#main-content\">\n", attr(action), attr(action))

	writeTextField(&b, "title", "Title", data.Title, true, data.Errors)
	writeTextField(&b, "destination", "Destination", data.Destination, true, data.Errors)
	writeTextArea(&b, "description", "Description", data.Description)
	writeNumberField(&b, "duration_days", "Duration (days)", data.DurationDays, "1", data.Errors)
	writeNumberField(&b, "base_price", "Base Price (£)", data.BasePrice, "0.01", data.Errors)
	writeNumberField(&b, "max_participants", "Max Participants", data.MaxParticipants, "1", data.Errors)
	writeDateField(&b, "start_date", "Departure Date", data.StartDate)
	writeDateField(&b, "end_date", "Return Date", data.EndDate)
	writeTextArea(&b, "itinerary", "Itinerary", data.Itinerary)

	b.WriteString("<div class=\"form-actions\">\n")
	b.WriteString("<a class=\"btn\" href=\"/trips\">Cancel</a>\n")
	b.WriteString("<button type=\"submit\" class=\"btn primary\">Save</button>\n")
	b.WriteString("</div>\n</form>\n")

	if data.ID != "" {
		b.WriteString("<section class=\"subsection\">\n<h2>Excursions</h2>\n")
		if len(excursions) == 0 {
			b.WriteString("<p class=\"empty\">No excursions for this trip yet.</p>\n")
		} else {
			b.WriteString("<table class=\"data-table\">\n<thead><tr><th>Name</th><th>Supplier</th><th>Price</th><th></th></tr></thead>\n<tbody>\n")
			for _, ex := range excursions {
				fmt.Fprintf(&b, "<tr><td><a href=\"/excursions/%s/edit\">%s</a></td><td>%s</td><td class=\"num\">%s</td>"+
					"<td class=\"row-actions\"><button class=\"btn danger\" hx-delete=\"/excursions/%s\" hx-confirm=\"Delete %s?\" hx-target=\"#main-content\">Delete</button></td></tr>\n",
					attr(ex.ID), esc(ex.Name), esc(ex.SupplierName), services.FormatEUR(ex.Price),
					attr(ex.ID), attr(ex.Name))
			}
			b.WriteString("</tbody>\n</table>\n")
		}
		fmt.Fprintf(&b, "<a class=\"btn\" href=\"/trips/%s/excursions/create\">Add Excursion</a>\n", attr(data.ID))
		b.WriteString("</section>\n")
	}

	b.WriteString("</section>\n")
	return raw(b.String())
}

// TripFormPage renders the full create/edit document.
func TripFormPage(data TripFormData, excursions []TripExcursionItem, header HeaderData, sidebar SidebarData) templ.Component {
	title := "Add Trip"
	if data.ID != "" {
		title = "Edit Trip"
	}
	return Page(title, TripFormContent(data, excursions), header, sidebar)
}

func writeNumberField(b *strings.Builder, name, label, value, step string, errors map[string]string) {
	fmt.Fprintf(b, "<label class=\"field\"><span>%s</span>"+
		"<input type=\"number\" name=\"%s\" value=\"%s\" step=\"%s\" min=\"0\">%s</label>\n",
		esc(label), attr(name), attr(value), attr(step), fieldError(errors, name))
}

func writeDateField(b *strings.Builder, name, label, value string) {
	fmt.Fprintf(b, "<label class=\"field\"><span>%s</span>"+
		"<input type=\"date\" name=\"%s\" value=\"%s\"></label>\n",
		esc(label), attr(name), attr(value))
}

package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// SupplierOption is a supplier entry for the excursion form dropdown.
type SupplierOption struct {
	ID   string
	Name string
}

// ExcursionFormData carries the create/edit form state. TripID is always
// set: excursions only exist in the context of a trip.
type ExcursionFormData struct {
	ID              string
	TripID          string
	TripTitle       string
	SupplierID      string
	Name            string
	Description     string
	Price           string
	DurationHours   string
	MaxParticipants string
	Suppliers       []SupplierOption
	Errors          map[string]string
}

// ExcursionFormContent renders the create/edit form for HTMX fragment swaps.
func ExcursionFormContent(data ExcursionFormData) templ.Component {
	action := fmt.Sprintf("/trips/%s/excursions", data.TripID)
	heading := "Add Excursion"
	if data.ID != "" {
		action = fmt.Sprintf("/excursions/%s/save", data.ID)
		heading = "Edit Excursion"
	}

	var b strings.Builder
	b.WriteString("<section class=\"form-page\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(heading))
	if data.TripTitle != "" {
		fmt.Fprintf(&b, "<p class=\"muted\">Trip: %s</p>\n", esc(data.TripTitle))
	}
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\" hx-post=\"%s\" hx-target=\"#main-content\">\n", attr(action), attr(action))

	writeTextField(&b, "name", "Name", data.Name, true, data.Errors)

	b.WriteString("<label class=\"field\"><span>Supplier</span><select name=\"supplier\">")
	b.WriteString("<option value=\"\">No supplier</option>")
	for _, s := range data.Suppliers {
		selected := ""
		if s.ID == data.SupplierID {
			selected = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%s\"%s>%s</option>", attr(s.ID), selected, esc(s.Name))
	}
	b.WriteString("</select></label>\n")

	writeTextArea(&b, "description", "Description", data.Description)
	writeNumberField(&b, "price", "Price per Student (€)", data.Price, "0.01", data.Errors)
	writeNumberField(&b, "duration_hours", "Duration (hours)", data.DurationHours, "0.5", data.Errors)
	writeNumberField(&b, "max_participants", "Max Participants", data.MaxParticipants, "1", data.Errors)

	b.WriteString("<div class=\"form-actions\">\n")
	fmt.Fprintf(&b, "<a class=\"btn\" href=\"/trips/%s/edit\">Cancel</a>\n", attr(data.TripID))
	b.WriteString("<button type=\"submit\" class=\"btn primary\">Save</button>\n")
	b.WriteString("</div>\n</form>\n</section>\n")
	return raw(b.String())
}

// ExcursionFormPage renders the full create/edit document.
func ExcursionFormPage(data ExcursionFormData, header HeaderData, sidebar SidebarData) templ.Component {
	title := "Add Excursion"
	if data.ID != "" {
		title = "Edit Excursion"
	}
	return Page(title, ExcursionFormContent(data), header, sidebar)
}

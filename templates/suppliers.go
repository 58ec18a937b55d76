package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"tourcrm/services"
)

// SupplierListItem is one row of the suppliers table.
type SupplierListItem struct {
	ID            string
	Name          string
	Category      string
	City          string
	ContactPerson string
	Phone         string
	Email         string
}

// SupplierListData carries the suppliers list view state.
type SupplierListData struct {
	Suppliers      []SupplierListItem
	SearchQuery    string
	CategoryFilter string
	TotalCount     int
}

// SupplierFormData carries the create/edit form state.
type SupplierFormData struct {
	ID             string
	Name           string
	Category       string
	ContactPerson  string
	Email          string
	Phone          string
	Address        string
	City           string
	Postcode       string
	Website        string
	Specialties    string
	Focus          string
	ApproxPrice    string
	NotesForGroups string
	TravelTime     string
	TransportMode  string
	Notes          string
	Errors         map[string]string
}

// SupplierListContent renders the suppliers table for HTMX fragment swaps.
func SupplierListContent(data SupplierListData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"list-page\" id=\"supplier-list\">\n")
	b.WriteString("<div class=\"list-header\">\n<h1>Suppliers</h1>\n")
	b.WriteString("<a class=\"btn primary\" href=\"/suppliers/create\">Add Supplier</a>\n</div>\n")

	b.WriteString("<form class=\"search\" hx-get=\"/suppliers\" hx-target=\"#supplier-list\" hx-swap=\"outerHTML\">\n")
	fmt.Fprintf(&b, "<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Search suppliers…\" hx-trigger=\"keyup changed delay:300ms\" hx-get=\"/suppliers\" hx-target=\"#supplier-list\" hx-swap=\"outerHTML\" hx-include=\"[name='category']\">\n",
		attr(data.SearchQuery))
	b.WriteString("<select name=\"category\" hx-get=\"/suppliers\" hx-target=\"#supplier-list\" hx-swap=\"outerHTML\" hx-include=\"[name='q']\">")
	b.WriteString("<option value=\"\">All categories</option>")
	b.WriteString(selectOptions(services.SupplierCategories, data.CategoryFilter))
	b.WriteString("</select>\n</form>\n")

	if len(data.Suppliers) == 0 {
		b.WriteString("<p class=\"empty\">No suppliers found.</p>\n")
	} else {
		b.WriteString("<table class=\"data-table\">\n<thead><tr>" +
			"<th>Name</th><th>Category</th><th>City</th><th>Contact</th><th>Phone</th><th>Email</th><th></th>" +
			"</tr></thead>\n<tbody>\n")
		for _, s := range data.Suppliers {
			fmt.Fprintf(&b, "<tr>"+
				"<td><a href=\"/suppliers/%s/edit\">%s</a></td>"+
				"<td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>"+
				"<td class=\"row-actions\">"+
				"<button class=\"btn danger\" hx-delete=\"/suppliers/%s\" hx-confirm=\"Delete %s?\" hx-target=\"#supplier-list\" hx-swap=\"outerHTML\">Delete</button>"+
				"</td></tr>\n",
				attr(s.ID), esc(s.Name),
				esc(s.Category), esc(s.City), esc(s.ContactPerson), esc(s.Phone), esc(s.Email),
				attr(s.ID), attr(s.Name))
		}
		b.WriteString("</tbody>\n</table>\n")
		fmt.Fprintf(&b, "<p class=\"muted\">%d suppliers</p>\n", data.TotalCount)
	}
	b.WriteString("</section>\n")
	return raw(b.String())
}

// SupplierListPage renders the full suppliers list document.
func SupplierListPage(data SupplierListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Suppliers", SupplierListContent(data), header, sidebar)
}

// SupplierFormContent renders the create/edit form for HTMX fragment swaps.
func SupplierFormContent(data SupplierFormData) templ.Component {
	action := "/suppliers"
	heading := "Add Supplier"
	if data.ID != "" {
		action = fmt.Sprintf("/suppliers/%s/save", data.ID)
		heading = "Edit Supplier"
	}

	var b strings.Builder
	b.WriteString("<section class=\"form-page\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(heading))
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\" hx-post=\"%s\" hx-target=\"#main-content\">\n", attr(action), attr(action))

	writeTextField(&b, "name", "Name", data.Name, true, data.Errors)
	fmt.Fprintf(&b, "<label class=\"field\"><span>Category</span><select name=\"category\">%s</select></label>\n",
		selectOptions(services.SupplierCategories, data.Category))
	writeTextField(&b, "contact_person", "Contact Person", data.ContactPerson, false, data.Errors)
	writeTextField(&b, "email", "Email", data.Email, false, data.Errors)
	writeTextField(&b, "phone", "Phone", data.Phone, false, data.Errors)
	writeTextField(&b, "address", "Address", data.Address, false, data.Errors)
	writeTextField(&b, "city", "City", data.City, false, data.Errors)
	writeTextField(&b, "postcode", "Postcode", data.Postcode, false, data.Errors)
	writeTextField(&b, "website", "Website", data.Website, false, data.Errors)
	writeTextField(&b, "specialties", "Specialties", data.Specialties, false, data.Errors)
	writeTextField(&b, "focus", "Focus", data.Focus, false, data.Errors)
	writeTextField(&b, "approx_price", "Approx Price", data.ApproxPrice, false, data.Errors)
	writeTextArea(&b, "notes_for_groups", "Notes for Groups", data.NotesForGroups)
	writeTextField(&b, "travel_time", "Travel Time", data.TravelTime, false, data.Errors)
	writeTextField(&b, "transport_mode", "Transport Mode", data.TransportMode, false, data.Errors)
	writeTextArea(&b, "notes", "Notes", data.Notes)

	b.WriteString("<div class=\"form-actions\">\n")
	b.WriteString("<a class=\"btn\" href=\"/suppliers\">Cancel</a>\n")
	b.WriteString("<button type=\"submit\" class=\"btn primary\">Save</button>\n")
	b.WriteString("</div>\n</form>\n</section>\n")
	return raw(b.String())
}

// SupplierFormPage renders the full create/edit document.
func SupplierFormPage(data SupplierFormData, header HeaderData, sidebar SidebarData) templ.Component {
	title := "Add Supplier"
	if data.ID != "" {
		title = "Edit Supplier"
	}
	return Page(title, SupplierFormContent(data), header, sidebar)
}

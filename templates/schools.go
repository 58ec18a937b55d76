package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"tourcrm/services"
)

// SchoolListItem is one row of the schools table.
type SchoolListItem struct {
	ID            string
	Name          string
	City          string
	Postcode      string
	Phone         string
	Email         string
	ContactPerson string
}

// SchoolListData carries the schools list view state.
type SchoolListData struct {
	Schools     []SchoolListItem
	SearchQuery string
	TotalCount  int
}

// SchoolFormData carries the create/edit form state, including per-field
// validation errors for re-rendering after a failed save.
type SchoolFormData struct {
	ID            string
	Name          string
	Address       string
	City          string
	Postcode      string
	Phone         string
	Email         string
	Website       string
	ContactPerson string
	Notes         string
	Errors        map[string]string
}

// SchoolListContent renders the schools table for HTMX fragment swaps.
func SchoolListContent(data SchoolListData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"list-page\" id=\"school-list\">\n")
	b.WriteString("<div class=\"list-header\">\n<h1>Schools</h1>\n")
	b.WriteString("<div class=\"list-actions\">\n")
	b.WriteString("<a class=\"btn\" href=\"/schools/import\">Import</a>\n")
	b.WriteString("<a class=\"btn primary\" href=\"/schools/create\">Add School</a>\n")
	b.WriteString("</div>\n</div>\n")

	fmt.Fprintf(&b, "<form class=\"search\" hx-get=\"/schools\" hx-target=\"#school-list\" hx-swap=\"outerHTML\">"+
		"<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Search schools…\" hx-trigger=\"keyup changed delay:300ms\" hx-get=\"/schools\" hx-target=\"#school-list\" hx-swap=\"outerHTML\"></form>\n",
		attr(data.SearchQuery))

	if len(data.Schools) == 0 {
		b.WriteString("<p class=\"empty\">No schools found.</p>\n")
	} else {
		b.WriteString("<table class=\"data-table\">\n<thead><tr>" +
			"<th>Name</th><th>City</th><th>Postcode</th><th>Contact</th><th>Phone</th><th>Email</th><th></th>" +
			"</tr></thead>\n<tbody>\n")
		for _, s := range data.Schools {
			fmt.Fprintf(&b, "<tr>"+
				"<td><a href=\"/schools/%s/edit\">%s</a></td>"+
				"<td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>"+
				"<td class=\"row-actions\">"+
				"<button class=\"btn danger\" hx-delete=\"/schools/%s\" hx-confirm=\"Delete %s?\" hx-target=\"#school-list\" hx-swap=\"outerHTML\">Delete</button>"+
				"</td></tr>\n",
				attr(s.ID), esc(s.Name),
				esc(s.City), esc(s.Postcode), esc(s.ContactPerson), esc(s.Phone), esc(s.Email),
				attr(s.ID), attr(s.Name))
		}
		b.WriteString("</tbody>\n</table>\n")
		fmt.Fprintf(&b, "<p class=\"muted\">%d schools</p>\n", data.TotalCount)
	}
	b.WriteString("</section>\n")
	return raw(b.String())
}

// SchoolListPage renders the full schools list document.
func SchoolListPage(data SchoolListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Schools", SchoolListContent(data), header, sidebar)
}

// SchoolFormContent renders the create/edit form for HTMX fragment swaps.
func SchoolFormContent(data SchoolFormData) templ.Component {
	action := "/schools"
	heading := "Add School"
	if data.ID != "" {
		action = fmt.Sprintf("/schools/%s/save", data.ID)
		heading = "Edit School"
	}

	var b strings.Builder
	b.WriteString("<section class=\"form-page\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(heading))
	fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\" hx-post=\"%s\" hx-target=\"#main-content\">\n", attr(action), attr(action))

	writeTextField(&b, "name", "Name", data.Name, true, data.Errors)
	writeTextField(&b, "address", "Address", data.Address, false, data.Errors)
	writeTextField(&b, "city", "City", data.City, false, data.Errors)
	writeTextField(&b, "postcode", "Postcode", data.Postcode, false, data.Errors)
	writeTextField(&b, "phone", "Phone", data.Phone, false, data.Errors)
	writeTextField(&b, "email", "Email", data.Email, false, data.Errors)
	writeTextField(&b, "website", "Website", data.Website, false, data.Errors)
	writeTextField(&b, "contact_person", "Contact Person", data.ContactPerson, false, data.Errors)
	writeTextArea(&b, "notes", "Notes", data.Notes)

	b.WriteString("<div class=\"form-actions\">\n")
	b.WriteString("<a class=\"btn\" href=\"/schools\">Cancel</a>\n")
	b.WriteString("<button type=\"submit\" class=\"btn primary\">Save</button>\n")
	b.WriteString("</div>\n</form>\n</section>\n")
	return raw(b.String())
}

// SchoolFormPage renders the full create/edit document.
func SchoolFormPage(data SchoolFormData, header HeaderData, sidebar SidebarData) templ.Component {
	title := "Add School"
	if data.ID != "" {
		title = "Edit School"
	}
	return Page(title, SchoolFormContent(data), header, sidebar)
}

// SchoolImportData carries the import page state. ParsedRowsJSON and
// ErrorsJSON round-trip the validation output through hidden form fields
// so commit and error-report requests stay stateless.
type SchoolImportData struct {
	Result         *services.ValidationResult
	ParsedRowsJSON string
	ErrorsJSON     string
}

// SchoolImportContent renders the upload form plus, after validation, the
// result summary and error rows.
func SchoolImportContent(data SchoolImportData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"import-page\" id=\"school-import\">\n<h1>Import Schools</h1>\n")
	b.WriteString("<p class=\"muted\">Upload a .csv or .xlsx file. " +
		"<a href=\"/schools/import/template?format=csv\">Download CSV template</a> · " +
		"<a href=\"/schools/import/template\">Download Excel template</a></p>\n")

	b.WriteString("<form hx-post=\"/schools/import\" hx-target=\"#school-import\" hx-swap=\"outerHTML\" enctype=\"multipart/form-data\">\n")
	b.WriteString("<input type=\"file\" name=\"file\" accept=\".csv,.xlsx\" required>\n")
	b.WriteString("<button type=\"submit\" class=\"btn primary\">Validate</button>\n")
	b.WriteString("</form>\n")

	if r := data.Result; r != nil {
		fmt.Fprintf(&b, "<div class=\"import-summary\"><p>%d rows: <strong>%d valid</strong>, <strong>%d with errors</strong>.</p></div>\n",
			r.TotalRows, r.ValidRows, r.ErrorRows)

		if len(r.Errors) > 0 {
			b.WriteString("<table class=\"data-table errors\">\n<thead><tr><th>Row</th><th>Field</th><th>Error</th></tr></thead>\n<tbody>\n")
			for _, e := range r.Errors {
				fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%s</td></tr>\n", e.Row, esc(e.Field), esc(e.Message))
			}
			b.WriteString("</tbody>\n</table>\n")
			fmt.Fprintf(&b, "<form method=\"post\" action=\"/schools/import/errors\">"+
				"<input type=\"hidden\" name=\"errors\" value=\"%s\">"+
				"<button type=\"submit\" class=\"btn\">Download error report</button></form>\n",
				attr(data.ErrorsJSON))
		}

		if r.ErrorRows == 0 && r.ValidRows > 0 {
			fmt.Fprintf(&b, "<form hx-post=\"/schools/import/commit\" hx-target=\"#school-import\" hx-swap=\"outerHTML\">"+
				"<input type=\"hidden\" name=\"rows\" value=\"%s\">"+
				"<button type=\"submit\" class=\"btn primary\">Import %d schools</button></form>\n",
				attr(data.ParsedRowsJSON), r.ValidRows)
		}
	}

	b.WriteString("</section>\n")
	return raw(b.String())
}

// SchoolImportPage renders the full import document.
func SchoolImportPage(data SchoolImportData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Import Schools", SchoolImportContent(data), header, sidebar)
}

func writeTextField(b *strings.Builder, name, label, value string, required bool, errors map[string]string) {
	req := ""
	if required {
		req = " required"
	}
	fmt.Fprintf(b, "<label class=\"field\"><span>%s</span>"+
		"<input type=\"text\" name=\"%s\" value=\"%s\"%s>%s</label>\n",
		esc(label), attr(name), attr(value), req, fieldError(errors, name))
}

func writeTextArea(b *strings.Builder, name, label, value string) {
	fmt.Fprintf(b, "<label class=\"field\"><span>%s</span>"+
		"<textarea name=\"%s\" rows=\"3\">%s</textarea></label>\n",
		esc(label), attr(name), esc(value))
}

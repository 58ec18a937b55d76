// Package templates renders the HTML views for the tour CRM. Components
// implement templ.Component so handlers can render either a full page or an
// HTMX fragment with the same building blocks.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// HeaderData carries the top bar state shared by every full page render.
type HeaderData struct {
	AppName string
}

// SidebarCounts holds the entity counts shown next to each nav item.
type SidebarCounts struct {
	Schools   int
	Trips     int
	Suppliers int
	Bookings  int
}

// SidebarData carries the navigation state for the sidebar.
type SidebarData struct {
	ActivePath string
	Counts     SidebarCounts
}

type navItem struct {
	path  string
	label string
	count int
}

// esc HTML-escapes user-provided text for safe interpolation.
func esc(s string) string {
	return html.EscapeString(s)
}

// attr escapes a value for use inside a double-quoted HTML attribute.
func attr(s string) string {
	return html.EscapeString(s)
}

// Page wraps a content component in the full HTML document shell with the
// header and sidebar.
func Page(title string, content templ.Component, header HeaderData, sidebar SidebarData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageTop(title, header, sidebar)); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageBottom())
		return err
	})
}

func pageTop(title string, header HeaderData, sidebar SidebarData) string {
	appName := header.AppName
	if appName == "" {
		appName = "TourCRM"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s | %s</title>\n", esc(title), esc(appName))
	b.WriteString("<script src=\"https://unpkg.com/htmx.org@1.9.12\"></script>\n")
	b.WriteString("<link rel=\"stylesheet\" href=\"/static/app.css\">\n")
	b.WriteString("<script src=\"/static/toast.js\" defer></script>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<div id=\"toast-container\"></div>\n")

	b.WriteString("<header class=\"topbar\">\n")
	fmt.Fprintf(&b, "<a class=\"brand\" href=\"/\">%s</a>\n", esc(appName))
	b.WriteString("<a class=\"topbar-action\" href=\"/quotes/new\">New Quote</a>\n")
	b.WriteString("</header>\n")

	b.WriteString("<div class=\"shell\">\n")
	b.WriteString(renderSidebar(sidebar))
	b.WriteString("<main id=\"main-content\" class=\"content\">\n")
	return b.String()
}

func pageBottom() string {
	return "</main>\n</div>\n</body>\n</html>\n"
}

func renderSidebar(data SidebarData) string {
	items := []navItem{
		{path: "/", label: "Dashboard"},
		{path: "/quotes", label: "Quotes"},
		{path: "/schools", label: "Schools", count: data.Counts.Schools},
		{path: "/trips", label: "Trips", count: data.Counts.Trips},
		{path: "/suppliers", label: "Suppliers", count: data.Counts.Suppliers},
		{path: "/bookings", label: "Bookings", count: data.Counts.Bookings},
	}

	var b strings.Builder
	b.WriteString("<nav class=\"sidebar\">\n<ul>\n")
	for _, item := range items {
		class := ""
		if isActivePath(data.ActivePath, item.path) {
			class = " class=\"active\""
		}
		fmt.Fprintf(&b, "<li%s><a href=\"%s\">%s", class, attr(item.path), esc(item.label))
		if item.count > 0 {
			fmt.Fprintf(&b, " <span class=\"count\">%d</span>", item.count)
		}
		b.WriteString("</a></li>\n")
	}
	b.WriteString("</ul>\n</nav>\n")
	return b.String()
}

func isActivePath(current, item string) bool {
	if item == "/" {
		return current == "/"
	}
	return current == item || strings.HasPrefix(current, item+"/")
}

// raw wraps a prebuilt HTML string as a component.
func raw(s string) templ.Component {
	return templ.Raw(s)
}

// selectOptions renders <option> tags, marking the selected value.
func selectOptions(options []string, selected string) string {
	var b strings.Builder
	for _, opt := range options {
		if opt == selected {
			fmt.Fprintf(&b, "<option value=\"%s\" selected>%s</option>", attr(opt), esc(opt))
		} else {
			fmt.Fprintf(&b, "<option value=\"%s\">%s</option>", attr(opt), esc(opt))
		}
	}
	return b.String()
}

// fieldError renders the inline error text for a form field, if any.
func fieldError(errors map[string]string, field string) string {
	if msg, ok := errors[field]; ok && msg != "" {
		return fmt.Sprintf("<p class=\"field-error\">%s</p>", esc(msg))
	}
	return ""
}

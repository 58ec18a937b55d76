package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/templates"
)

type contextKey string

const HeaderDataKey contextKey = "headerData"
const SidebarDataKey contextKey = "sidebarData"

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{AppName: "Tour CRM"}
}

// GetSidebarData extracts the pre-built SidebarData from the request context.
func GetSidebarData(r *http.Request) templates.SidebarData {
	if val, ok := r.Context().Value(SidebarDataKey).(templates.SidebarData); ok {
		return val
	}
	return templates.SidebarData{}
}

// LayoutMiddleware builds the HeaderData and SidebarData every page render
// needs and stores them in the request context, so handlers only assemble
// their own view data.
func LayoutMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		headerData := templates.HeaderData{AppName: "Tour CRM"}
		sidebarData := BuildSidebarData(e.Request, app)

		ctx := context.WithValue(e.Request.Context(), HeaderDataKey, headerData)
		ctx = context.WithValue(ctx, SidebarDataKey, sidebarData)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// BuildSidebarData constructs the SidebarData for the current request,
// including the entity counts shown next to each nav item.
func BuildSidebarData(r *http.Request, app *pocketbase.PocketBase) templates.SidebarData {
	data := templates.SidebarData{
		ActivePath: r.URL.Path,
	}

	counts := map[string]*int{
		"schools":   &data.Counts.Schools,
		"trips":     &data.Counts.Trips,
		"suppliers": &data.Counts.Suppliers,
		"bookings":  &data.Counts.Bookings,
	}
	for name, countPtr := range counts {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			continue
		}
		records, err := app.FindRecordsByFilter(col, "id != ''", "", 0, 0)
		if err == nil {
			*countPtr = len(records)
		}
	}

	return data
}

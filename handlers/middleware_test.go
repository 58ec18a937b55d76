package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourcrm/templates"
	"tourcrm/testhelpers"
)

func TestGetHeaderData_FromContext(t *testing.T) {
	expected := templates.HeaderData{AppName: "Custom Name"}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), HeaderDataKey, expected)
	req = req.WithContext(ctx)

	got := GetHeaderData(req)
	if got.AppName != "Custom Name" {
		t.Errorf("expected AppName %q, got %q", "Custom Name", got.AppName)
	}
}

func TestGetHeaderData_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got := GetHeaderData(req)
	if got.AppName != "Tour CRM" {
		t.Errorf("expected fallback AppName %q, got %q", "Tour CRM", got.AppName)
	}
}

func TestGetSidebarData_FromContext(t *testing.T) {
	expected := templates.SidebarData{
		ActivePath: "/schools",
		Counts:     templates.SidebarCounts{Schools: 3, Bookings: 7},
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), SidebarDataKey, expected)
	req = req.WithContext(ctx)

	got := GetSidebarData(req)
	if got.ActivePath != "/schools" {
		t.Errorf("expected ActivePath %q, got %q", "/schools", got.ActivePath)
	}
	if got.Counts.Bookings != 7 {
		t.Errorf("expected 7 bookings in sidebar counts, got %d", got.Counts.Bookings)
	}
}

func TestGetSidebarData_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got := GetSidebarData(req)
	if got.ActivePath != "" || got.Counts.Schools != 0 {
		t.Errorf("expected zero-value sidebar data, got %+v", got)
	}
}

func TestBuildSidebarData_Counts(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	school := testhelpers.CreateTestSchool(t, app, "Westminster Academy")
	testhelpers.CreateTestSchool(t, app, "Oakwood High School")
	trip := testhelpers.CreateTestTrip(t, app, "Historical Paris Discovery")
	testhelpers.CreateTestBooking(t, app, school.Id, trip.Id, "enquiry")

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	data := BuildSidebarData(req, app)

	if data.ActivePath != "/trips" {
		t.Errorf("expected ActivePath %q, got %q", "/trips", data.ActivePath)
	}
	if data.Counts.Schools != 2 {
		t.Errorf("expected 2 schools, got %d", data.Counts.Schools)
	}
	if data.Counts.Trips != 1 {
		t.Errorf("expected 1 trip, got %d", data.Counts.Trips)
	}
	if data.Counts.Suppliers != 0 {
		t.Errorf("expected 0 suppliers, got %d", data.Counts.Suppliers)
	}
	if data.Counts.Bookings != 1 {
		t.Errorf("expected 1 booking, got %d", data.Counts.Bookings)
	}
}

func TestLayoutMiddleware_StoresContextData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSchool(t, app, "Westminster Academy")

	middleware := LayoutMiddleware(app)

	req := httptest.NewRequest(http.MethodGet, "/schools", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	// e.Next() with no follow-up handler is a no-op in tests
	_ = middleware(e)

	headerData := GetHeaderData(e.Request)
	if headerData.AppName != "Tour CRM" {
		t.Errorf("expected AppName %q in context, got %q", "Tour CRM", headerData.AppName)
	}

	sidebarData := GetSidebarData(e.Request)
	if sidebarData.ActivePath != "/schools" {
		t.Errorf("expected ActivePath %q, got %q", "/schools", sidebarData.ActivePath)
	}
	if sidebarData.Counts.Schools != 1 {
		t.Errorf("expected 1 school in sidebar counts, got %d", sidebarData.Counts.Schools)
	}
}

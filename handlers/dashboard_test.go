package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tourcrm/testhelpers"
)

func TestHandleDashboard(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	school := testhelpers.CreateTestSchool(t, app, "Westminster Academy")
	trip := testhelpers.CreateTestTrip(t, app, "Historical Paris Discovery")
	testhelpers.CreateTestBooking(t, app, school.Id, trip.Id, "confirmed")

	handler := HandleDashboard(app)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Dashboard", "Booking Pipeline",
		"Westminster Academy", "Historical Paris Discovery")
}

func TestHandleDashboard_EmptyDatabase(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleDashboard(app)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "<html", "Dashboard")
}

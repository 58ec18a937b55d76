package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"tourcrm/testhelpers"
)

func TestHandleTripSave_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleTripSave(app)

	form := url.Values{
		"title":            {"Science & Innovation Berlin"},
		"destination":      {"Berlin, Germany"},
		"duration_days":    {"4"},
		"base_price":       {"520"},
		"max_participants": {"45"},
		"start_date":       {"2026-06-08"},
		"end_date":         {"2026-06-11"},
	}
	req := postForm("/trips", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	records, err := app.FindRecordsByFilter("trips", "title = {:t}", "", 0, 0,
		map[string]any{"t": "Science & Innovation Berlin"})
	if err != nil || len(records) != 1 {
		t.Fatalf("expected one saved trip, got %d (err %v)", len(records), err)
	}
	trip := records[0]
	if trip.GetInt("duration_days") != 4 {
		t.Errorf("duration_days = %d, want 4", trip.GetInt("duration_days"))
	}
	if trip.GetFloat("base_price") != 520 {
		t.Errorf("base_price = %v, want 520", trip.GetFloat("base_price"))
	}

	// create redirects to the edit form so excursions can be added
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/trips/"+trip.Id+"/edit")
}

func TestHandleTripSave_Validation(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleTripSave(app)

	form := url.Values{
		"title":       {""},
		"destination": {"Paris"},
		"start_date":  {"2026-06-11"},
		"end_date":    {"2026-06-08"},
	}
	req := postForm("/trips", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Title is required", "End date must not be before the start date")

	records, _ := app.FindRecordsByFilter("trips", "id != ''", "", 0, 0)
	if len(records) != 0 {
		t.Errorf("expected no saved trips, got %d", len(records))
	}
}

func TestHandleTripEdit_ShowsExcursions(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	trip := testhelpers.CreateTestTrip(t, app, "Historical Paris Discovery")
	testhelpers.CreateTestExcursion(t, app, trip.Id, "Louvre Guided Tour")

	handler := HandleTripEdit(app)
	req := httptest.NewRequest(http.MethodGet, "/trips/"+trip.Id+"/edit", nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", trip.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Historical Paris Discovery", "Louvre Guided Tour")
}

func TestHandleTripDelete_WithBookings(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	school := testhelpers.CreateTestSchool(t, app, "Westminster Academy")
	trip := testhelpers.CreateTestTrip(t, app, "Booked Trip")
	testhelpers.CreateTestBooking(t, app, school.Id, trip.Id, "confirmed")

	handler := HandleTripDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/trips/"+trip.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", trip.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Errorf("expected status 409 Conflict, got %d", rec.Code)
	}
	if _, err := app.FindRecordById("trips", trip.Id); err != nil {
		t.Error("trip should not have been deleted")
	}
}

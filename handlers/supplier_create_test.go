package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"tourcrm/testhelpers"
)

func TestHandleSupplierSave_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleSupplierSave(app)

	form := url.Values{
		"name":        {"Louvre Education Services"},
		"category":    {"Attraction"},
		"city":        {"Paris"},
		"email":       {"groups@louvre-edu.example.fr"},
		"specialties": {"Guided museum tours"},
	}
	req := postForm("/suppliers", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/suppliers")

	records, err := app.FindRecordsByFilter("suppliers", "name = {:n}", "", 0, 0,
		map[string]any{"n": "Louvre Education Services"})
	if err != nil || len(records) != 1 {
		t.Fatalf("expected one saved supplier, got %d (err %v)", len(records), err)
	}
	if got := records[0].GetString("category"); got != "Attraction" {
		t.Errorf("category = %q, want Attraction", got)
	}
}

func TestHandleSupplierSave_UnknownCategory(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleSupplierSave(app)

	form := url.Values{
		"name":     {"Mystery Vendor"},
		"category": {"Spaceflight"},
	}
	req := postForm("/suppliers", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Unknown category")
}

func TestHandleSupplierList_CategoryFilter(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	attraction := testhelpers.CreateTestSupplier(t, app, "Louvre Education Services")
	attraction.Set("category", "Attraction")
	if err := app.Save(attraction); err != nil {
		t.Fatalf("failed to update supplier: %v", err)
	}
	transport := testhelpers.CreateTestSupplier(t, app, "Roma Coach Partners")
	transport.Set("category", "Transport")
	if err := app.Save(transport); err != nil {
		t.Fatalf("failed to update supplier: %v", err)
	}

	handler := HandleSupplierList(app)
	req := httptest.NewRequest(http.MethodGet, "/suppliers?category=Transport", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Roma Coach Partners")
	if strings.Contains(body, "Louvre Education Services") {
		t.Error("category filter should exclude other categories")
	}
}

func TestHandleSupplierDelete_LinkedToExcursion(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	supplier := testhelpers.CreateTestSupplier(t, app, "Linked Supplier")
	trip := testhelpers.CreateTestTrip(t, app, "Paris Trip")
	excursion := testhelpers.CreateTestExcursion(t, app, trip.Id, "Louvre Guided Tour")
	excursion.Set("supplier", supplier.Id)
	if err := app.Save(excursion); err != nil {
		t.Fatalf("failed to link supplier: %v", err)
	}

	handler := HandleSupplierDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/suppliers/"+supplier.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", supplier.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Errorf("expected status 409 Conflict, got %d", rec.Code)
	}
}

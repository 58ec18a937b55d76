package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourcrm/testhelpers"
)

func TestHandleQuoteExportJSON(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewQuoteStore()
	q := store.New()
	q.SetDetails(map[string]string{"school_name": "Westminster Academy"})

	handler := HandleQuoteExportJSON(store)
	req := httptest.NewRequest(http.MethodGet, "/quotes/"+q.ID+"/export/json", nil)
	req.SetPathValue("id", q.ID)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "quotation-Westminster-Academy") ||
		!strings.Contains(disposition, ".json") {
		t.Errorf("unexpected Content-Disposition %q", disposition)
	}
	if !strings.Contains(rec.Body.String(), "Westminster Academy") {
		t.Error("exported JSON should contain the school name")
	}
}

func TestHandleQuoteExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewQuoteStore()
	q := store.New()

	handler := HandleQuoteExportExcel(store)
	req := httptest.NewRequest(http.MethodGet, "/quotes/"+q.ID+"/export/excel", nil)
	req.SetPathValue("id", q.ID)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Body.Len() == 0 {
		t.Fatal("expected spreadsheet bytes")
	}
	// xlsx files are zip archives
	if !strings.HasPrefix(rec.Body.String(), "PK") {
		t.Error("expected a zip-based xlsx payload")
	}
}

func TestHandleQuoteExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewQuoteStore()
	q := store.New()

	handler := HandleQuoteExportPDF(store)
	req := httptest.NewRequest(http.MethodGet, "/quotes/"+q.ID+"/export/pdf", nil)
	req.SetPathValue("id", q.ID)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("expected a PDF payload")
	}
}

func TestHandleQuoteExport_UnknownQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewQuoteStore()

	handler := HandleQuoteExportJSON(store)
	req := httptest.NewRequest(http.MethodGet, "/quotes/missing/export/json", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

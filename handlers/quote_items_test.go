package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"tourcrm/testhelpers"
)

func TestHandleQuoteItemUpdate_RecomputesTotals(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewQuoteStore()
	q := store.New()
	q.SetDetails(map[string]string{"pax": "40", "markup": "20"})

	flights := q.CostItems[0]
	handler := HandleQuoteItemUpdate(store)

	steps := []struct {
		field string
		value string
	}{
		{"price_per_unit", "150"},
		{"quantity_students", "38"},
		{"quantity_adults", "2"},
	}
	for _, step := range steps {
		form := url.Values{"field": {step.field}, "value": {step.value}}
		req := postForm("/quotes/"+q.ID+"/items/"+flights.ID, form)
		req.Method = http.MethodPatch
		req.SetPathValue("id", q.ID)
		req.SetPathValue("itemId", flights.ID)
		rec := httptest.NewRecorder()

		if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("update %s: handler returned error: %v", step.field, err)
		}
	}

	if got := q.Totals.TotalCost; got != 6000 {
		t.Errorf("TotalCost = %v, want 6000", got)
	}
	if got := q.Totals.NetTotal; got != 7200 {
		t.Errorf("NetTotal = %v, want 7200", got)
	}
}

func TestHandleQuoteItemUpdate_UnknownQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewQuoteStore()
	handler := HandleQuoteItemUpdate(store)

	form := url.Values{"field": {"price_per_unit"}, "value": {"10"}}
	req := postForm("/quotes/missing/items/fixed-1", form)
	req.SetPathValue("id", "missing")
	req.SetPathValue("itemId", "fixed-1")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestHandleQuoteItemAdd_AndDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewQuoteStore()
	q := store.New()
	itemsBefore := len(q.CostItems)

	addHandler := HandleQuoteItemAdd(store)
	form := url.Values{
		"description":       {"Theatre tickets"},
		"unit":              {"Per Person"},
		"price_per_unit":    {"25"},
		"quantity_students": {"30"},
		"quantity_adults":   {"2"},
		"days_required":     {"1"},
	}
	req := postForm("/quotes/"+q.ID+"/items", form)
	req.SetPathValue("id", q.ID)
	rec := httptest.NewRecorder()

	if err := addHandler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("add handler returned error: %v", err)
	}
	if len(q.CostItems) != itemsBefore+1 {
		t.Fatalf("expected %d items after add, got %d", itemsBefore+1, len(q.CostItems))
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Theatre tickets")

	added := q.CostItems[len(q.CostItems)-1]
	delHandler := HandleQuoteItemDelete(store)
	delReq := httptest.NewRequest(http.MethodDelete, "/quotes/"+q.ID+"/items/"+added.ID, nil)
	delReq.SetPathValue("id", q.ID)
	delReq.SetPathValue("itemId", added.ID)
	delRec := httptest.NewRecorder()

	if err := delHandler(newTestRequestEvent(app, delReq, delRec)); err != nil {
		t.Fatalf("delete handler returned error: %v", err)
	}
	if len(q.CostItems) != itemsBefore {
		t.Errorf("expected %d items after delete, got %d", itemsBefore, len(q.CostItems))
	}
}

func TestHandleQuoteItemAdd_RejectsBlankDescription(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewQuoteStore()
	q := store.New()

	handler := HandleQuoteItemAdd(store)
	form := url.Values{
		"description":       {"   "},
		"quantity_students": {"10"},
	}
	req := postForm("/quotes/"+q.ID+"/items", form)
	req.SetPathValue("id", q.ID)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestHandleQuoteItemDelete_FixedItemRefused(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewQuoteStore()
	q := store.New()
	fixed := q.CostItems[0]

	handler := HandleQuoteItemDelete(store)
	req := httptest.NewRequest(http.MethodDelete, "/quotes/"+q.ID+"/items/"+fixed.ID, nil)
	req.SetPathValue("id", q.ID)
	req.SetPathValue("itemId", fixed.ID)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "cannot be removed") {
		t.Error("expected refusal message for fixed item")
	}
}

func TestHandleQuoteDetails_UpdatesTotals(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewQuoteStore()
	q := store.New()

	handler := HandleQuoteDetails(store)
	form := url.Values{
		"school_name": {"Westminster Academy"},
		"pax":         {"45"},
		"markup":      {"15"},
		"euro_amount": {"100"},
	}
	req := postForm("/quotes/"+q.ID+"/details", form)
	req.SetPathValue("id", q.ID)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if q.SchoolName != "Westminster Academy" {
		t.Errorf("SchoolName = %q", q.SchoolName)
	}
	if q.Pax != 45 {
		t.Errorf("Pax = %d, want 45", q.Pax)
	}
	// default 1:10 ratio on 45 pax
	if q.Totals.CalculatedFreePlaces != 4 {
		t.Errorf("CalculatedFreePlaces = %d, want 4", q.Totals.CalculatedFreePlaces)
	}
	// default rate 0.85
	if q.Totals.ConvertedAmount != 85 {
		t.Errorf("ConvertedAmount = %v, want 85", q.Totals.ConvertedAmount)
	}
}

func TestHandleQuoteDetails_FreePlacesField(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewQuoteStore()
	q := store.New()

	handler := HandleQuoteDetails(store)
	form := url.Values{
		"pax":         {"40"},
		"free_places": {"3"},
	}
	req := postForm("/quotes/"+q.ID+"/details", form)
	req.SetPathValue("id", q.ID)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if q.FreePlaces != 3 {
		t.Errorf("FreePlaces = %d, want 3", q.FreePlaces)
	}

	// the editor form must offer the field back for the next edit
	viewReq := httptest.NewRequest(http.MethodGet, "/quotes/"+q.ID, nil)
	viewReq.Header.Set("HX-Request", "true")
	viewReq.SetPathValue("id", q.ID)
	viewRec := httptest.NewRecorder()

	if err := HandleQuoteView(store)(newTestRequestEvent(app, viewReq, viewRec)); err != nil {
		t.Fatalf("view handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, viewRec.Body.String(),
		`name="free_places" value="3"`)
}

func TestHandleQuoteDetails_ExchangeRateKeepsPrecision(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewQuoteStore()
	q := store.New()

	handler := HandleQuoteDetails(store)
	form := url.Values{"exchange_rate": {"0.85555"}}
	req := postForm("/quotes/"+q.ID+"/details", form)
	req.SetPathValue("id", q.ID)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if q.ExchangeRate != 0.85555 {
		t.Fatalf("ExchangeRate = %v, want 0.85555", q.ExchangeRate)
	}

	// the form input must carry the full-precision rate so re-posting the
	// form on the next edit does not overwrite it with a rounded value
	viewReq := httptest.NewRequest(http.MethodGet, "/quotes/"+q.ID, nil)
	viewReq.Header.Set("HX-Request", "true")
	viewReq.SetPathValue("id", q.ID)
	viewRec := httptest.NewRecorder()

	if err := HandleQuoteView(store)(newTestRequestEvent(app, viewReq, viewRec)); err != nil {
		t.Fatalf("view handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, viewRec.Body.String(),
		`name="exchange_rate" value="0.85555"`)

	// replay the rendered value, as the change-triggered form re-post does
	replay := url.Values{"exchange_rate": {"0.85555"}}
	replayReq := postForm("/quotes/"+q.ID+"/details", replay)
	replayReq.SetPathValue("id", q.ID)
	replayRec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, replayReq, replayRec)); err != nil {
		t.Fatalf("replay handler returned error: %v", err)
	}
	if q.ExchangeRate != 0.85555 {
		t.Errorf("ExchangeRate after round-trip = %v, want 0.85555", q.ExchangeRate)
	}
}

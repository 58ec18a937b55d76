package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourcrm/testhelpers"
)

func TestHandleSchoolList_Fragment(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSchool(t, app, "Westminster Academy")
	testhelpers.CreateTestSchool(t, app, "Oakwood High School")

	handler := HandleSchoolList(app)

	req := httptest.NewRequest(http.MethodGet, "/schools", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Westminster Academy", "Oakwood High School")

	if strings.Contains(rec.Body.String(), "<html") {
		t.Error("HTMX request should render a fragment, not a full page")
	}
}

func TestHandleSchoolList_FullPage(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSchool(t, app, "Riverside College")

	handler := HandleSchoolList(app)

	req := httptest.NewRequest(http.MethodGet, "/schools", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"<html", "Riverside College")
}

func TestHandleSchoolList_Search(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSchool(t, app, "Westminster Academy")
	testhelpers.CreateTestSchool(t, app, "Oakwood High School")

	handler := HandleSchoolList(app)

	req := httptest.NewRequest(http.MethodGet, "/schools?q=Oakwood", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Oakwood High School")
	if strings.Contains(body, "Westminster Academy") {
		t.Error("search should filter out non-matching schools")
	}
}

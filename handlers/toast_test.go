package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func decodeToast(t *testing.T, trigger string) map[string]string {
	t.Helper()

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	raw, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}

	var toast map[string]string
	if err := json.Unmarshal(raw, &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}
	return toast
}

func TestSetToast_Basic(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "success", "School saved")

	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}

	toast := decodeToast(t, trigger)
	if toast["message"] != "School saved" {
		t.Errorf("expected message %q, got %q", "School saved", toast["message"])
	}
	if toast["type"] != "success" {
		t.Errorf("expected type %q, got %q", "success", toast["type"])
	}
}

func TestSetToast_FlashCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "info", "Booking updated")

	var flash *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash_toast" {
			flash = c
		}
	}
	if flash == nil {
		t.Fatal("expected flash_toast cookie to be set")
	}
	if !strings.Contains(flash.Value, "Booking") {
		t.Errorf("cookie value %q does not carry the message", flash.Value)
	}
}

func TestSetToast_MergesWithExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	rec.Header().Set("HX-Trigger", `{"refreshSidebar":{"reason":"import"}}`)

	SetToast(e, "success", "42 schools imported")

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if _, ok := parsed["refreshSidebar"]; !ok {
		t.Error("expected refreshSidebar key to survive the merge")
	}

	toast := decodeToast(t, rec.Header().Get("HX-Trigger"))
	if toast["message"] != "42 schools imported" {
		t.Errorf("expected message %q, got %q", "42 schools imported", toast["message"])
	}
}

func TestSetToast_OverwritesInvalidExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	rec.Header().Set("HX-Trigger", "notValidJSON")

	SetToast(e, "error", "Overwritten")

	toast := decodeToast(t, rec.Header().Get("HX-Trigger"))
	if toast["message"] != "Overwritten" {
		t.Errorf("expected message %q, got %q", "Overwritten", toast["message"])
	}
}

func TestSetToast_SpecialCharacters(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"quotes", `School "St. Mary's" saved`},
		{"angle brackets", `<script>alert("xss")</script>`},
		{"em dash", "Cannot delete school — it has existing bookings"},
		{"unicode", "Converted to £1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := &core.RequestEvent{}
			e.Response = rec

			SetToast(e, "info", tt.message)

			toast := decodeToast(t, rec.Header().Get("HX-Trigger"))
			if toast["message"] != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, toast["message"])
			}
		})
	}
}

func TestErrorToast_SetsHeaderAndReswap(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	if err := ErrorToast(e, http.StatusNotFound, "Booking not found"); err != nil {
		t.Fatalf("ErrorToast returned error: %v", err)
	}

	toast := decodeToast(t, rec.Header().Get("HX-Trigger"))
	if toast["type"] != "error" {
		t.Errorf("expected type %q, got %q", "error", toast["type"])
	}
	if toast["message"] != "Booking not found" {
		t.Errorf("expected message %q, got %q", "Booking not found", toast["message"])
	}

	if reswap := rec.Header().Get("HX-Reswap"); reswap != "none" {
		t.Errorf("expected HX-Reswap 'none', got %q", reswap)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	if rec.Body.String() != "Booking not found" {
		t.Errorf("expected body %q, got %q", "Booking not found", rec.Body.String())
	}
}

func TestErrorToast_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		code int
		msg  string
	}{
		{"bad request", http.StatusBadRequest, "Invalid form data"},
		{"conflict", http.StatusConflict, "Cannot delete school — it has existing bookings"},
		{"server error", http.StatusInternalServerError, "Something went wrong. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := &core.RequestEvent{}
			e.Response = rec

			ErrorToast(e, tt.code, tt.msg)

			if rec.Code != tt.code {
				t.Errorf("expected status %d, got %d", tt.code, rec.Code)
			}
			if rec.Header().Get("HX-Reswap") != "none" {
				t.Error("expected HX-Reswap: none")
			}
		})
	}
}

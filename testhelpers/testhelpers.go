// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestSchool creates a school record with the given name and returns it.
func CreateTestSchool(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("schools")
	if err != nil {
		t.Fatalf("failed to find schools collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("address", "1 Test Street")
	record.Set("city", "Leeds")
	record.Set("postcode", "LS1 4AB")
	record.Set("phone", "0113 496 0123")
	record.Set("email", "office@test-school.example.uk")
	record.Set("contact_person", "Test Contact")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test school: %v", err)
	}

	return record
}

// CreateTestTrip creates a trip record with the given title and returns it.
func CreateTestTrip(t *testing.T, app *pocketbase.PocketBase, title string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("trips")
	if err != nil {
		t.Fatalf("failed to find trips collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("title", title)
	record.Set("destination", "Paris, France")
	record.Set("duration_days", 4)
	record.Set("base_price", 450.0)
	record.Set("max_participants", 40)
	record.Set("start_date", "2026-04-15")
	record.Set("end_date", "2026-04-18")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test trip: %v", err)
	}

	return record
}

// CreateTestSupplier creates a supplier record with the given name and returns it.
func CreateTestSupplier(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("suppliers")
	if err != nil {
		t.Fatalf("failed to find suppliers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("category", "Attraction")
	record.Set("contact_person", "Test Contact")
	record.Set("email", "bookings@supplier.example.com")
	record.Set("phone", "+33 1 40 20 50 50")
	record.Set("city", "Paris")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test supplier: %v", err)
	}

	return record
}

// CreateTestExcursion creates an excursion record linked to a trip.
func CreateTestExcursion(t *testing.T, app *pocketbase.PocketBase, tripID, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("excursions")
	if err != nil {
		t.Fatalf("failed to find excursions collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("trip", tripID)
	record.Set("name", name)
	record.Set("price", 12.0)
	record.Set("duration_hours", 3.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test excursion: %v", err)
	}

	return record
}

// CreateTestBooking creates a booking record linking a school and a trip.
func CreateTestBooking(t *testing.T, app *pocketbase.PocketBase, schoolID, tripID, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("bookings")
	if err != nil {
		t.Fatalf("failed to find bookings collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("school", schoolID)
	record.Set("trip", tripID)
	record.Set("status", status)
	record.Set("participant_count", 25)
	record.Set("total_price", 11250.0)
	record.Set("contact_email", "leader@test-school.example.uk")
	record.Set("contact_phone", "0113 496 0123")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test booking: %v", err)
	}

	return record
}

// CreateTestBookingExcursion attaches an excursion to a booking with a
// provider status.
func CreateTestBookingExcursion(t *testing.T, app *pocketbase.PocketBase, bookingID, excursionID, providerStatus string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("booking_excursions")
	if err != nil {
		t.Fatalf("failed to find booking_excursions collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("booking", bookingID)
	record.Set("excursion", excursionID)
	record.Set("participant_count", 25)
	record.Set("total_price", 300.0)
	record.Set("provider_status", providerStatus)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test booking excursion: %v", err)
	}

	return record
}

// CreateTestActivity creates an activity log entry for a booking.
func CreateTestActivity(t *testing.T, app *pocketbase.PocketBase, bookingID, activityType, description string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("activities")
	if err != nil {
		t.Fatalf("failed to find activities collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("booking", bookingID)
	record.Set("type", activityType)
	record.Set("description", description)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test activity: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

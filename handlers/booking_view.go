package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/services"
	"tourcrm/templates"
)

func HandleBookingView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bookingID := e.Request.PathValue("id")

		record, err := app.FindRecordById("bookings", bookingID)
		if err != nil {
			log.Printf("booking_view: could not find booking %s: %v", bookingID, err)
			return ErrorToast(e, http.StatusNotFound, "Booking not found")
		}

		data := templates.BookingDetailData{
			Booking:             bookingListItem(app, record),
			ContactEmail:        record.GetString("contact_email"),
			ContactPhone:        record.GetString("contact_phone"),
			SpecialRequirements: record.GetString("special_requirements"),
			Notes:               record.GetString("notes"),
			Excursions:          loadBookingExcursions(app, bookingID),
			Activities:          loadBookingActivities(app, bookingID),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.BookingDetailContent(data)
		} else {
			headerData := GetHeaderData(e.Request)
			sidebarData := GetSidebarData(e.Request)
			component = templates.BookingDetailPage(data, headerData, sidebarData)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleBookingActivityAdd logs a manual activity entry and re-renders the
// activity log.
// Route: POST /bookings/{id}/activities
func HandleBookingActivityAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bookingID := e.Request.PathValue("id")

		if _, err := app.FindRecordById("bookings", bookingID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Booking not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		activityType := strings.TrimSpace(e.Request.FormValue("type"))
		description := strings.TrimSpace(e.Request.FormValue("description"))

		if !containsOption(services.ActivityTypes, activityType) {
			return ErrorToast(e, http.StatusBadRequest, "Unknown activity type")
		}
		if description == "" {
			return ErrorToast(e, http.StatusBadRequest, "Description is required")
		}

		col, err := app.FindCollectionByNameOrId("activities")
		if err != nil {
			log.Printf("booking_view: could not find activities collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("booking", bookingID)
		record.Set("type", activityType)
		record.Set("description", description)

		if err := app.Save(record); err != nil {
			log.Printf("booking_view: failed to save activity for booking %s: %v", bookingID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not log activity")
		}

		SetToast(e, "success", "Activity logged")
		component := templates.BookingActivityLog(bookingID, loadBookingActivities(app, bookingID))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleBookingExcursionStatus updates the provider chase status of one
// excursion attached to a booking.
// Route: PATCH /bookings/{id}/excursions/{excursionId}/status
func HandleBookingExcursionStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bookingID := e.Request.PathValue("id")
		linkID := e.Request.PathValue("excursionId")

		record, err := app.FindRecordById("booking_excursions", linkID)
		if err != nil {
			log.Printf("booking_view: could not find booking excursion %s: %v", linkID, err)
			return ErrorToast(e, http.StatusNotFound, "Excursion not found")
		}
		if record.GetString("booking") != bookingID {
			return ErrorToast(e, http.StatusNotFound, "Excursion not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		status := strings.TrimSpace(e.Request.FormValue("provider_status"))
		if !containsOption(services.ProviderStatuses, status) {
			return ErrorToast(e, http.StatusBadRequest, "Unknown provider status")
		}

		oldStatus := record.GetString("provider_status")
		record.Set("provider_status", status)
		record.Set("provider_contact_date", nowDateString())

		if err := app.Save(record); err != nil {
			log.Printf("booking_view: failed to update provider status for %s: %v", linkID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not update provider status")
		}

		if oldStatus != status {
			excursionName := lookupName(app, "excursions", record.GetString("excursion"), "name")
			logBookingActivity(app, bookingID, "note",
				"Provider status for "+excursionName+" set to "+services.ProviderStatusLabels[status])
		}

		SetToast(e, "success", "Provider status updated")
		return e.String(http.StatusOK, "")
	}
}

func nowDateString() string {
	return time.Now().Format("2006-01-02")
}

func loadBookingExcursions(app *pocketbase.PocketBase, bookingID string) []templates.BookingExcursionItem {
	records, err := app.FindRecordsByFilter(
		"booking_excursions",
		"booking = {:bookingId}",
		"", 0, 0,
		map[string]any{"bookingId": bookingID},
	)
	if err != nil {
		log.Printf("booking_view: could not query booking excursions: %v", err)
		return nil
	}

	var items []templates.BookingExcursionItem
	for _, rec := range records {
		excursionID := rec.GetString("excursion")
		item := templates.BookingExcursionItem{
			ID:               rec.Id,
			ExcursionName:    lookupName(app, "excursions", excursionID, "name"),
			ParticipantCount: rec.GetInt("participant_count"),
			TotalPrice:       rec.GetFloat("total_price"),
			ProviderStatus:   rec.GetString("provider_status"),
		}
		if excursion, err := app.FindRecordById("excursions", excursionID); err == nil {
			item.SupplierName = lookupName(app, "suppliers", excursion.GetString("supplier"), "name")
		}
		items = append(items, item)
	}
	return items
}

func loadBookingActivities(app *pocketbase.PocketBase, bookingID string) []templates.BookingActivityItem {
	records, err := app.FindRecordsByFilter(
		"activities",
		"booking = {:bookingId}",
		"-created",
		0, 0,
		map[string]any{"bookingId": bookingID},
	)
	if err != nil {
		log.Printf("booking_view: could not query activities: %v", err)
		return nil
	}

	var items []templates.BookingActivityItem
	for _, rec := range records {
		items = append(items, templates.BookingActivityItem{
			Type:        rec.GetString("type"),
			Description: rec.GetString("description"),
			Created:     rec.GetString("created"),
		})
	}
	return items
}

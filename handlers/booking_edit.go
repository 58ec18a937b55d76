package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/services"
	"tourcrm/templates"
)

func HandleBookingEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bookingID := e.Request.PathValue("id")

		record, err := app.FindRecordById("bookings", bookingID)
		if err != nil {
			log.Printf("booking_edit: could not find booking %s: %v", bookingID, err)
			return ErrorToast(e, http.StatusNotFound, "Booking not found")
		}

		data := templates.BookingFormData{
			ID:                  record.Id,
			SchoolID:            record.GetString("school"),
			TripID:              record.GetString("trip"),
			Status:              record.GetString("status"),
			ParticipantCount:    strconv.Itoa(record.GetInt("participant_count")),
			TotalPrice:          strconv.FormatFloat(record.GetFloat("total_price"), 'f', -1, 64),
			ContactEmail:        record.GetString("contact_email"),
			ContactPhone:        record.GetString("contact_phone"),
			SpecialRequirements: record.GetString("special_requirements"),
			Notes:               record.GetString("notes"),
			Schools:             loadSchoolOptions(app),
			Trips:               loadTripOptions(app),
			Errors:              make(map[string]string),
		}

		return renderBookingForm(e, data)
	}
}

func HandleBookingUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bookingID := e.Request.PathValue("id")

		record, err := app.FindRecordById("bookings", bookingID)
		if err != nil {
			log.Printf("booking_edit: could not find booking %s: %v", bookingID, err)
			return ErrorToast(e, http.StatusNotFound, "Booking not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := bookingFormFromRequest(e)
		data.ID = record.Id
		validateBookingForm(app, &data)

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data.Schools = loadSchoolOptions(app)
			data.Trips = loadTripOptions(app)
			return renderBookingForm(e, data)
		}

		oldStatus := record.GetString("status")
		applyBookingForm(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("booking_edit: failed to update booking %s: %v", bookingID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save booking")
		}

		if oldStatus != data.Status {
			logBookingActivity(app, bookingID, "note",
				"Status changed from "+services.BookingStatusLabel(oldStatus)+" to "+services.BookingStatusLabel(data.Status))
		}

		SetToast(e, "success", "Booking updated")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/bookings/"+bookingID)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/bookings/"+bookingID)
	}
}

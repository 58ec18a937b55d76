package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleBookingDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bookingID := e.Request.PathValue("id")
		if bookingID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing booking ID")
		}

		record, err := app.FindRecordById("bookings", bookingID)
		if err != nil {
			log.Printf("booking_delete: could not find booking %s: %v", bookingID, err)
			return ErrorToast(e, http.StatusNotFound, "Booking not found")
		}

		// Attached excursions and activities cascade via the relation
		if err := app.Delete(record); err != nil {
			log.Printf("booking_delete: failed to delete booking %s: %v", bookingID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("booking_delete: deleted booking %s", bookingID)
		SetToast(e, "success", "Booking deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/bookings")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/bookings")
	}
}

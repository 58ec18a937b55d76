package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleTripDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		tripID := e.Request.PathValue("id")
		if tripID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing trip ID")
		}

		record, err := app.FindRecordById("trips", tripID)
		if err != nil {
			log.Printf("trip_delete: could not find trip %s: %v", tripID, err)
			return ErrorToast(e, http.StatusNotFound, "Trip not found")
		}

		bookings, err := app.FindRecordsByFilter(
			"bookings",
			"trip = {:tripId}",
			"", 1, 0,
			map[string]any{"tripId": tripID},
		)
		if err == nil && len(bookings) > 0 {
			return ErrorToast(e, http.StatusConflict, "Cannot delete trip — it has existing bookings")
		}

		// Excursions cascade via the relation
		if err := app.Delete(record); err != nil {
			log.Printf("trip_delete: failed to delete trip %s: %v", tripID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("trip_delete: deleted trip %s", tripID)
		SetToast(e, "success", "Trip deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/trips")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/trips")
	}
}

package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleExcursionDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		excursionID := e.Request.PathValue("id")
		if excursionID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing excursion ID")
		}

		record, err := app.FindRecordById("excursions", excursionID)
		if err != nil {
			log.Printf("excursion_delete: could not find excursion %s: %v", excursionID, err)
			return ErrorToast(e, http.StatusNotFound, "Excursion not found")
		}

		linked, err := app.FindRecordsByFilter(
			"booking_excursions",
			"excursion = {:excursionId}",
			"", 1, 0,
			map[string]any{"excursionId": excursionID},
		)
		if err == nil && len(linked) > 0 {
			return ErrorToast(e, http.StatusConflict, "Cannot delete excursion — it is attached to bookings")
		}

		tripID := record.GetString("trip")
		if err := app.Delete(record); err != nil {
			log.Printf("excursion_delete: failed to delete excursion %s: %v", excursionID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("excursion_delete: deleted excursion %s", excursionID)
		SetToast(e, "success", "Excursion deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/trips/"+tripID+"/edit")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/trips/"+tripID+"/edit")
	}
}

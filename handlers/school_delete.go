package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleSchoolDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		schoolID := e.Request.PathValue("id")
		if schoolID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing school ID")
		}

		record, err := app.FindRecordById("schools", schoolID)
		if err != nil {
			log.Printf("school_delete: could not find school %s: %v", schoolID, err)
			return ErrorToast(e, http.StatusNotFound, "School not found")
		}

		// Schools with bookings keep their history
		bookings, err := app.FindRecordsByFilter(
			"bookings",
			"school = {:schoolId}",
			"", 1, 0,
			map[string]any{"schoolId": schoolID},
		)
		if err == nil && len(bookings) > 0 {
			return ErrorToast(e, http.StatusConflict, "Cannot delete school — it has existing bookings")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("school_delete: failed to delete school %s: %v", schoolID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("school_delete: deleted school %s", schoolID)
		SetToast(e, "success", "School deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/schools")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/schools")
	}
}

package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/templates"
)

func HandleSchoolEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		schoolID := e.Request.PathValue("id")

		record, err := app.FindRecordById("schools", schoolID)
		if err != nil {
			log.Printf("school_edit: could not find school %s: %v", schoolID, err)
			return ErrorToast(e, http.StatusNotFound, "School not found")
		}

		data := templates.SchoolFormData{
			ID:            record.Id,
			Name:          record.GetString("name"),
			Address:       record.GetString("address"),
			City:          record.GetString("city"),
			Postcode:      record.GetString("postcode"),
			Phone:         record.GetString("phone"),
			Email:         record.GetString("email"),
			Website:       record.GetString("website"),
			ContactPerson: record.GetString("contact_person"),
			Notes:         record.GetString("notes"),
			Errors:        make(map[string]string),
		}

		return renderSchoolForm(e, data)
	}
}

func HandleSchoolUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		schoolID := e.Request.PathValue("id")

		record, err := app.FindRecordById("schools", schoolID)
		if err != nil {
			log.Printf("school_edit: could not find school %s: %v", schoolID, err)
			return ErrorToast(e, http.StatusNotFound, "School not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := schoolFormFromRequest(e)
		data.ID = record.Id
		validateSchoolForm(&data)

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderSchoolForm(e, data)
		}

		applySchoolForm(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("school_edit: failed to update school %s: %v", schoolID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save school")
		}

		SetToast(e, "success", "School updated")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/schools")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/schools")
	}
}

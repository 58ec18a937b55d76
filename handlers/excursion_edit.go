package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/templates"
)

func HandleExcursionEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		excursionID := e.Request.PathValue("id")

		record, err := app.FindRecordById("excursions", excursionID)
		if err != nil {
			log.Printf("excursion_edit: could not find excursion %s: %v", excursionID, err)
			return ErrorToast(e, http.StatusNotFound, "Excursion not found")
		}

		data := templates.ExcursionFormData{
			ID:              record.Id,
			TripID:          record.GetString("trip"),
			TripTitle:       lookupName(app, "trips", record.GetString("trip"), "title"),
			SupplierID:      record.GetString("supplier"),
			Name:            record.GetString("name"),
			Description:     record.GetString("description"),
			Price:           strconv.FormatFloat(record.GetFloat("price"), 'f', -1, 64),
			DurationHours:   strconv.FormatFloat(record.GetFloat("duration_hours"), 'f', -1, 64),
			MaxParticipants: strconv.Itoa(record.GetInt("max_participants")),
			Suppliers:       loadSupplierOptions(app),
			Errors:          make(map[string]string),
		}

		return renderExcursionForm(e, data)
	}
}

func HandleExcursionUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		excursionID := e.Request.PathValue("id")

		record, err := app.FindRecordById("excursions", excursionID)
		if err != nil {
			log.Printf("excursion_edit: could not find excursion %s: %v", excursionID, err)
			return ErrorToast(e, http.StatusNotFound, "Excursion not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		tripID := record.GetString("trip")
		data := excursionFormFromRequest(e)
		data.ID = record.Id
		data.TripID = tripID
		data.TripTitle = lookupName(app, "trips", tripID, "title")
		validateExcursionForm(app, &data)

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data.Suppliers = loadSupplierOptions(app)
			return renderExcursionForm(e, data)
		}

		applyExcursionForm(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("excursion_edit: failed to update excursion %s: %v", excursionID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save excursion")
		}

		SetToast(e, "success", "Excursion updated")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/trips/"+tripID+"/edit")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/trips/"+tripID+"/edit")
	}
}

package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/templates"
)

// HandleExcursionCreate renders the excursion form for a trip.
// Route: GET /trips/{id}/excursions/create
func HandleExcursionCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		tripID := e.Request.PathValue("id")

		trip, err := app.FindRecordById("trips", tripID)
		if err != nil {
			log.Printf("excursion_create: could not find trip %s: %v", tripID, err)
			return ErrorToast(e, http.StatusNotFound, "Trip not found")
		}

		data := templates.ExcursionFormData{
			TripID:        tripID,
			TripTitle:     trip.GetString("title"),
			DurationHours: "1",
			Suppliers:     loadSupplierOptions(app),
			Errors:        make(map[string]string),
		}
		return renderExcursionForm(e, data)
	}
}

// HandleExcursionSave creates an excursion under a trip.
// Route: POST /trips/{id}/excursions
func HandleExcursionSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		tripID := e.Request.PathValue("id")

		trip, err := app.FindRecordById("trips", tripID)
		if err != nil {
			log.Printf("excursion_create: could not find trip %s: %v", tripID, err)
			return ErrorToast(e, http.StatusNotFound, "Trip not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := excursionFormFromRequest(e)
		data.TripID = tripID
		data.TripTitle = trip.GetString("title")
		validateExcursionForm(app, &data)

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data.Suppliers = loadSupplierOptions(app)
			return renderExcursionForm(e, data)
		}

		excursionsCol, err := app.FindCollectionByNameOrId("excursions")
		if err != nil {
			log.Printf("excursion_create: could not find excursions collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(excursionsCol)
		record.Set("trip", tripID)
		applyExcursionForm(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("excursion_create: failed to save excursion: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save excursion")
		}

		log.Printf("excursion_create: created excursion %s for trip %s", record.Id, tripID)
		SetToast(e, "success", "Excursion added")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/trips/"+tripID+"/edit")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/trips/"+tripID+"/edit")
	}
}

func excursionFormFromRequest(e *core.RequestEvent) templates.ExcursionFormData {
	return templates.ExcursionFormData{
		SupplierID:      strings.TrimSpace(e.Request.FormValue("supplier")),
		Name:            strings.TrimSpace(e.Request.FormValue("name")),
		Description:     strings.TrimSpace(e.Request.FormValue("description")),
		Price:           strings.TrimSpace(e.Request.FormValue("price")),
		DurationHours:   strings.TrimSpace(e.Request.FormValue("duration_hours")),
		MaxParticipants: strings.TrimSpace(e.Request.FormValue("max_participants")),
		Errors:          make(map[string]string),
	}
}

func validateExcursionForm(app *pocketbase.PocketBase, data *templates.ExcursionFormData) {
	if data.Name == "" {
		data.Errors["name"] = "Name is required"
	}
	if data.Price != "" {
		if v, err := strconv.ParseFloat(data.Price, 64); err != nil || v < 0 {
			data.Errors["price"] = "Price must be a non-negative number"
		}
	}
	if data.SupplierID != "" {
		if _, err := app.FindRecordById("suppliers", data.SupplierID); err != nil {
			data.Errors["supplier"] = "Unknown supplier"
		}
	}
}

func applyExcursionForm(record *core.Record, data templates.ExcursionFormData) {
	record.Set("supplier", data.SupplierID)
	record.Set("name", data.Name)
	record.Set("description", data.Description)
	record.Set("price", parseFormFloat(data.Price))
	record.Set("duration_hours", parseFormFloat(data.DurationHours))
	record.Set("max_participants", parseFormInt(data.MaxParticipants))
}

func renderExcursionForm(e *core.RequestEvent, data templates.ExcursionFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.ExcursionFormContent(data)
	} else {
		headerData := GetHeaderData(e.Request)
		sidebarData := GetSidebarData(e.Request)
		component = templates.ExcursionFormPage(data, headerData, sidebarData)
	}
	return component.Render(e.Request.Context(), e.Response)
}

func loadSupplierOptions(app *pocketbase.PocketBase) []templates.SupplierOption {
	records, err := app.FindRecordsByFilter("suppliers", "id != ''", "name", 0, 0)
	if err != nil {
		log.Printf("excursion_create: could not query suppliers: %v", err)
		return nil
	}

	var options []templates.SupplierOption
	for _, rec := range records {
		options = append(options, templates.SupplierOption{
			ID:   rec.Id,
			Name: rec.GetString("name"),
		})
	}
	return options
}

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

func HandleTripCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.TripFormData{
			DurationDays: "1",
			Errors:       make(map[string]string),
		}
		return renderTripForm(e, data, nil)
	}
}

func HandleTripSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := tripFormFromRequest(e)
		validateTripForm(&data)

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderTripForm(e, data, nil)
		}

		tripsCol, err := app.FindCollectionByNameOrId("trips")
		if err != nil {
			log.Printf("trip_create: could not find trips collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(tripsCol)
		applyTripForm(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("trip_create: failed to save trip: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save trip")
		}

		log.Printf("trip_create: created trip %s", record.Id)
		SetToast(e, "success", "Trip created")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/trips/"+record.Id+"/edit")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/trips/"+record.Id+"/edit")
	}
}

func tripFormFromRequest(e *core.RequestEvent) templates.TripFormData {
	return templates.TripFormData{
		Title:           strings.TrimSpace(e.Request.FormValue("title")),
		Destination:     strings.TrimSpace(e.Request.FormValue("destination")),
		Description:     strings.TrimSpace(e.Request.FormValue("description")),
		DurationDays:    strings.TrimSpace(e.Request.FormValue("duration_days")),
		BasePrice:       strings.TrimSpace(e.Request.FormValue("base_price")),
		MaxParticipants: strings.TrimSpace(e.Request.FormValue("max_participants")),
		StartDate:       strings.TrimSpace(e.Request.FormValue("start_date")),
		EndDate:         strings.TrimSpace(e.Request.FormValue("end_date")),
		Itinerary:       strings.TrimSpace(e.Request.FormValue("itinerary")),
		Errors:          make(map[string]string),
	}
}

func validateTripForm(data *templates.TripFormData) {
	if data.Title == "" {
		data.Errors["title"] = "Title is required"
	}
	if data.Destination == "" {
		data.Errors["destination"] = "Destination is required"
	}
	if data.DurationDays != "" {
		if n, err := strconv.Atoi(data.DurationDays); err != nil || n < 1 {
			data.Errors["duration_days"] = "Duration must be a whole number of days"
		}
	}
	if data.BasePrice != "" {
		if v, err := strconv.ParseFloat(data.BasePrice, 64); err != nil || v < 0 {
			data.Errors["base_price"] = "Price must be a non-negative number"
		}
	}
	if data.StartDate != "" && data.EndDate != "" && data.EndDate < data.StartDate {
		data.Errors["end_date"] = "End date must not be before the start date"
	}
}

func applyTripForm(record *core.Record, data templates.TripFormData) {
	record.Set("title", data.Title)
	record.Set("destination", data.Destination)
	record.Set("description", data.Description)
	record.Set("duration_days", parseFormInt(data.DurationDays))
	record.Set("base_price", parseFormFloat(data.BasePrice))
	record.Set("max_participants", parseFormInt(data.MaxParticipants))
	record.Set("start_date", data.StartDate)
	record.Set("end_date", data.EndDate)
	record.Set("itinerary", data.Itinerary)
}

func renderTripForm(e *core.RequestEvent, data templates.TripFormData, excursions []templates.TripExcursionItem) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.TripFormContent(data, excursions)
	} else {
		headerData := GetHeaderData(e.Request)
		sidebarData := GetSidebarData(e.Request)
		component = templates.TripFormPage(data, excursions, headerData, sidebarData)
	}
	return component.Render(e.Request.Context(), e.Response)
}

func parseFormInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseFormFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

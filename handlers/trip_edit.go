package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/templates"
)

func HandleTripEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		tripID := e.Request.PathValue("id")

		record, err := app.FindRecordById("trips", tripID)
		if err != nil {
			log.Printf("trip_edit: could not find trip %s: %v", tripID, err)
			return ErrorToast(e, http.StatusNotFound, "Trip not found")
		}

		data := templates.TripFormData{
			ID:              record.Id,
			Title:           record.GetString("title"),
			Destination:     record.GetString("destination"),
			Description:     record.GetString("description"),
			DurationDays:    strconv.Itoa(record.GetInt("duration_days")),
			BasePrice:       strconv.FormatFloat(record.GetFloat("base_price"), 'f', -1, 64),
			MaxParticipants: strconv.Itoa(record.GetInt("max_participants")),
			StartDate:       record.GetString("start_date"),
			EndDate:         record.GetString("end_date"),
			Itinerary:       record.GetString("itinerary"),
			Errors:          make(map[string]string),
		}

		return renderTripForm(e, data, loadTripExcursions(app, tripID))
	}
}

func HandleTripUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		tripID := e.Request.PathValue("id")

		record, err := app.FindRecordById("trips", tripID)
		if err != nil {
			log.Printf("trip_edit: could not find trip %s: %v", tripID, err)
			return ErrorToast(e, http.StatusNotFound, "Trip not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := tripFormFromRequest(e)
		data.ID = record.Id
		validateTripForm(&data)

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderTripForm(e, data, loadTripExcursions(app, tripID))
		}

		applyTripForm(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("trip_edit: failed to update trip %s: %v", tripID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save trip")
		}

		SetToast(e, "success", "Trip updated")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/trips")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/trips")
	}
}

// loadTripExcursions lists a trip's excursions with their supplier names
// resolved, for the excursions panel on the trip form.
func loadTripExcursions(app *pocketbase.PocketBase, tripID string) []templates.TripExcursionItem {
	records, err := app.FindRecordsByFilter(
		"excursions",
		"trip = {:tripId}",
		"name",
		0, 0,
		map[string]any{"tripId": tripID},
	)
	if err != nil {
		log.Printf("trip_edit: could not query excursions for trip %s: %v", tripID, err)
		return nil
	}

	var items []templates.TripExcursionItem
	for _, rec := range records {
		items = append(items, templates.TripExcursionItem{
			ID:           rec.Id,
			Name:         rec.GetString("name"),
			SupplierName: lookupName(app, "suppliers", rec.GetString("supplier"), "name"),
			Price:        rec.GetFloat("price"),
		})
	}
	return items
}

package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/services"
	"tourcrm/templates"
)

func HandleBookingCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.BookingFormData{
			Status:  "enquiry",
			Schools: loadSchoolOptions(app),
			Trips:   loadTripOptions(app),
			Errors:  make(map[string]string),
		}
		return renderBookingForm(e, data)
	}
}

func HandleBookingSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := bookingFormFromRequest(e)
		validateBookingForm(app, &data)

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data.Schools = loadSchoolOptions(app)
			data.Trips = loadTripOptions(app)
			return renderBookingForm(e, data)
		}

		bookingsCol, err := app.FindCollectionByNameOrId("bookings")
		if err != nil {
			log.Printf("booking_create: could not find bookings collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(bookingsCol)
		applyBookingForm(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("booking_create: failed to save booking: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save booking")
		}

		logBookingActivity(app, record.Id, "note", "Booking created with status "+services.BookingStatusLabel(data.Status))

		log.Printf("booking_create: created booking %s", record.Id)
		SetToast(e, "success", "Booking created")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/bookings/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/bookings/"+record.Id)
	}
}

func bookingFormFromRequest(e *core.RequestEvent) templates.BookingFormData {
	return templates.BookingFormData{
		SchoolID:            strings.TrimSpace(e.Request.FormValue("school")),
		TripID:              strings.TrimSpace(e.Request.FormValue("trip")),
		Status:              strings.TrimSpace(e.Request.FormValue("status")),
		ParticipantCount:    strings.TrimSpace(e.Request.FormValue("participant_count")),
		TotalPrice:          strings.TrimSpace(e.Request.FormValue("total_price")),
		ContactEmail:        strings.TrimSpace(e.Request.FormValue("contact_email")),
		ContactPhone:        strings.TrimSpace(e.Request.FormValue("contact_phone")),
		SpecialRequirements: strings.TrimSpace(e.Request.FormValue("special_requirements")),
		Notes:               strings.TrimSpace(e.Request.FormValue("notes")),
		Errors:              make(map[string]string),
	}
}

func validateBookingForm(app *pocketbase.PocketBase, data *templates.BookingFormData) {
	if data.SchoolID == "" {
		data.Errors["school"] = "School is required"
	} else if _, err := app.FindRecordById("schools", data.SchoolID); err != nil {
		data.Errors["school"] = "Unknown school"
	}
	if data.TripID == "" {
		data.Errors["trip"] = "Trip is required"
	} else if _, err := app.FindRecordById("trips", data.TripID); err != nil {
		data.Errors["trip"] = "Unknown trip"
	}
	if !containsOption(services.BookingStatuses, data.Status) {
		data.Errors["status"] = "Unknown status"
	}
	if data.ParticipantCount != "" {
		if n, err := strconv.Atoi(data.ParticipantCount); err != nil || n < 0 {
			data.Errors["participant_count"] = "Participants must be a whole number"
		}
	}
	if data.ContactEmail != "" && !services.ValidateEmail(data.ContactEmail) {
		data.Errors["contact_email"] = "Not a valid email address"
	}
}

func applyBookingForm(record *core.Record, data templates.BookingFormData) {
	record.Set("school", data.SchoolID)
	record.Set("trip", data.TripID)
	record.Set("status", data.Status)
	record.Set("participant_count", parseFormInt(data.ParticipantCount))
	record.Set("total_price", parseFormFloat(data.TotalPrice))
	record.Set("contact_email", data.ContactEmail)
	record.Set("contact_phone", data.ContactPhone)
	record.Set("special_requirements", data.SpecialRequirements)
	record.Set("notes", data.Notes)
}

func renderBookingForm(e *core.RequestEvent, data templates.BookingFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.BookingFormContent(data)
	} else {
		headerData := GetHeaderData(e.Request)
		sidebarData := GetSidebarData(e.Request)
		component = templates.BookingFormPage(data, headerData, sidebarData)
	}
	return component.Render(e.Request.Context(), e.Response)
}

func loadSchoolOptions(app *pocketbase.PocketBase) []templates.SchoolOption {
	records, err := app.FindRecordsByFilter("schools", "id != ''", "name", 0, 0)
	if err != nil {
		log.Printf("booking_create: could not query schools: %v", err)
		return nil
	}
	var options []templates.SchoolOption
	for _, rec := range records {
		options = append(options, templates.SchoolOption{ID: rec.Id, Name: rec.GetString("name")})
	}
	return options
}

func loadTripOptions(app *pocketbase.PocketBase) []templates.TripOption {
	records, err := app.FindRecordsByFilter("trips", "id != ''", "start_date", 0, 0)
	if err != nil {
		log.Printf("booking_create: could not query trips: %v", err)
		return nil
	}
	var options []templates.TripOption
	for _, rec := range records {
		options = append(options, templates.TripOption{ID: rec.Id, Title: rec.GetString("title")})
	}
	return options
}

// logBookingActivity appends an entry to a booking's activity log. Failures
// are logged and swallowed: the log never blocks the main operation.
func logBookingActivity(app *pocketbase.PocketBase, bookingID, activityType, description string) {
	col, err := app.FindCollectionByNameOrId("activities")
	if err != nil {
		log.Printf("booking_activity: could not find activities collection: %v", err)
		return
	}

	record := core.NewRecord(col)
	record.Set("booking", bookingID)
	record.Set("type", activityType)
	record.Set("description", description)

	if err := app.Save(record); err != nil {
		log.Printf("booking_activity: failed to log %s for booking %s: %v", activityType, bookingID, err)
	}
}

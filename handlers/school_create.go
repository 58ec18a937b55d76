package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/services"
	"tourcrm/templates"
)

func HandleSchoolCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.SchoolFormData{
			Errors: make(map[string]string),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.SchoolFormContent(data)
		} else {
			headerData := GetHeaderData(e.Request)
			sidebarData := GetSidebarData(e.Request)
			component = templates.SchoolFormPage(data, headerData, sidebarData)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleSchoolSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := schoolFormFromRequest(e)
		validateSchoolForm(&data)

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderSchoolForm(e, data)
		}

		schoolsCol, err := app.FindCollectionByNameOrId("schools")
		if err != nil {
			log.Printf("school_create: could not find schools collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(schoolsCol)
		applySchoolForm(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("school_create: failed to save school: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save school")
		}

		log.Printf("school_create: created school %s", record.Id)
		SetToast(e, "success", "School created")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/schools")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/schools")
	}
}

func schoolFormFromRequest(e *core.RequestEvent) templates.SchoolFormData {
	return templates.SchoolFormData{
		Name:          strings.TrimSpace(e.Request.FormValue("name")),
		Address:       strings.TrimSpace(e.Request.FormValue("address")),
		City:          strings.TrimSpace(e.Request.FormValue("city")),
		Postcode:      strings.TrimSpace(e.Request.FormValue("postcode")),
		Phone:         strings.TrimSpace(e.Request.FormValue("phone")),
		Email:         strings.TrimSpace(e.Request.FormValue("email")),
		Website:       strings.TrimSpace(e.Request.FormValue("website")),
		ContactPerson: strings.TrimSpace(e.Request.FormValue("contact_person")),
		Notes:         strings.TrimSpace(e.Request.FormValue("notes")),
		Errors:        make(map[string]string),
	}
}

func validateSchoolForm(data *templates.SchoolFormData) {
	if data.Name == "" {
		data.Errors["name"] = "Name is required"
	}
	if data.Address == "" {
		data.Errors["address"] = "Address is required"
	}
	if data.City == "" {
		data.Errors["city"] = "City is required"
	}
	if data.Postcode == "" {
		data.Errors["postcode"] = "Postcode is required"
	} else if !services.ValidatePostcode(data.Postcode) {
		data.Errors["postcode"] = "Not a valid UK postcode"
	}
	if data.Phone == "" {
		data.Errors["phone"] = "Phone is required"
	} else if !services.ValidatePhone(data.Phone) {
		data.Errors["phone"] = "Not a valid phone number"
	}
	if data.Email == "" {
		data.Errors["email"] = "Email is required"
	} else if !services.ValidateEmail(data.Email) {
		data.Errors["email"] = "Not a valid email address"
	}
}

func applySchoolForm(record *core.Record, data templates.SchoolFormData) {
	record.Set("name", data.Name)
	record.Set("address", data.Address)
	record.Set("city", data.City)
	record.Set("postcode", data.Postcode)
	record.Set("phone", data.Phone)
	record.Set("email", data.Email)
	record.Set("website", data.Website)
	record.Set("contact_person", data.ContactPerson)
	record.Set("notes", data.Notes)
}

func renderSchoolForm(e *core.RequestEvent, data templates.SchoolFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.SchoolFormContent(data)
	} else {
		headerData := GetHeaderData(e.Request)
		sidebarData := GetSidebarData(e.Request)
		component = templates.SchoolFormPage(data, headerData, sidebarData)
	}
	return component.Render(e.Request.Context(), e.Response)
}

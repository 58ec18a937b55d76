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

func HandleSupplierCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.SupplierFormData{
			Errors: make(map[string]string),
		}
		return renderSupplierForm(e, data)
	}
}

func HandleSupplierSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := supplierFormFromRequest(e)
		validateSupplierForm(&data)

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderSupplierForm(e, data)
		}

		suppliersCol, err := app.FindCollectionByNameOrId("suppliers")
		if err != nil {
			log.Printf("supplier_create: could not find suppliers collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(suppliersCol)
		applySupplierForm(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("supplier_create: failed to save supplier: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save supplier")
		}

		log.Printf("supplier_create: created supplier %s", record.Id)
		SetToast(e, "success", "Supplier created")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/suppliers")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/suppliers")
	}
}

func supplierFormFromRequest(e *core.RequestEvent) templates.SupplierFormData {
	return templates.SupplierFormData{
		Name:           strings.TrimSpace(e.Request.FormValue("name")),
		Category:       strings.TrimSpace(e.Request.FormValue("category")),
		ContactPerson:  strings.TrimSpace(e.Request.FormValue("contact_person")),
		Email:          strings.TrimSpace(e.Request.FormValue("email")),
		Phone:          strings.TrimSpace(e.Request.FormValue("phone")),
		Address:        strings.TrimSpace(e.Request.FormValue("address")),
		City:           strings.TrimSpace(e.Request.FormValue("city")),
		Postcode:       strings.TrimSpace(e.Request.FormValue("postcode")),
		Website:        strings.TrimSpace(e.Request.FormValue("website")),
		Specialties:    strings.TrimSpace(e.Request.FormValue("specialties")),
		Focus:          strings.TrimSpace(e.Request.FormValue("focus")),
		ApproxPrice:    strings.TrimSpace(e.Request.FormValue("approx_price")),
		NotesForGroups: strings.TrimSpace(e.Request.FormValue("notes_for_groups")),
		TravelTime:     strings.TrimSpace(e.Request.FormValue("travel_time")),
		TransportMode:  strings.TrimSpace(e.Request.FormValue("transport_mode")),
		Notes:          strings.TrimSpace(e.Request.FormValue("notes")),
		Errors:         make(map[string]string),
	}
}

func validateSupplierForm(data *templates.SupplierFormData) {
	if data.Name == "" {
		data.Errors["name"] = "Name is required"
	}
	if data.Category != "" && !containsOption(services.SupplierCategories, data.Category) {
		data.Errors["category"] = "Unknown category"
	}
	if data.Email != "" && !services.ValidateEmail(data.Email) {
		data.Errors["email"] = "Not a valid email address"
	}
}

func applySupplierForm(record *core.Record, data templates.SupplierFormData) {
	record.Set("name", data.Name)
	record.Set("category", data.Category)
	record.Set("contact_person", data.ContactPerson)
	record.Set("email", data.Email)
	record.Set("phone", data.Phone)
	record.Set("address", data.Address)
	record.Set("city", data.City)
	record.Set("postcode", data.Postcode)
	record.Set("website", data.Website)
	record.Set("specialties", data.Specialties)
	record.Set("focus", data.Focus)
	record.Set("approx_price", data.ApproxPrice)
	record.Set("notes_for_groups", data.NotesForGroups)
	record.Set("travel_time", data.TravelTime)
	record.Set("transport_mode", data.TransportMode)
	record.Set("notes", data.Notes)
}

func renderSupplierForm(e *core.RequestEvent, data templates.SupplierFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.SupplierFormContent(data)
	} else {
		headerData := GetHeaderData(e.Request)
		sidebarData := GetSidebarData(e.Request)
		component = templates.SupplierFormPage(data, headerData, sidebarData)
	}
	return component.Render(e.Request.Context(), e.Response)
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}

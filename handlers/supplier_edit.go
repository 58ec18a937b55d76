package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/templates"
)

func HandleSupplierEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		supplierID := e.Request.PathValue("id")

		record, err := app.FindRecordById("suppliers", supplierID)
		if err != nil {
			log.Printf("supplier_edit: could not find supplier %s: %v", supplierID, err)
			return ErrorToast(e, http.StatusNotFound, "Supplier not found")
		}

		data := templates.SupplierFormData{
			ID:             record.Id,
			Name:           record.GetString("name"),
			Category:       record.GetString("category"),
			ContactPerson:  record.GetString("contact_person"),
			Email:          record.GetString("email"),
			Phone:          record.GetString("phone"),
			Address:        record.GetString("address"),
			City:           record.GetString("city"),
			Postcode:       record.GetString("postcode"),
			Website:        record.GetString("website"),
			Specialties:    record.GetString("specialties"),
			Focus:          record.GetString("focus"),
			ApproxPrice:    record.GetString("approx_price"),
			NotesForGroups: record.GetString("notes_for_groups"),
			TravelTime:     record.GetString("travel_time"),
			TransportMode:  record.GetString("transport_mode"),
			Notes:          record.GetString("notes"),
			Errors:         make(map[string]string),
		}

		return renderSupplierForm(e, data)
	}
}

func HandleSupplierUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		supplierID := e.Request.PathValue("id")

		record, err := app.FindRecordById("suppliers", supplierID)
		if err != nil {
			log.Printf("supplier_edit: could not find supplier %s: %v", supplierID, err)
			return ErrorToast(e, http.StatusNotFound, "Supplier not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := supplierFormFromRequest(e)
		data.ID = record.Id
		validateSupplierForm(&data)

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderSupplierForm(e, data)
		}

		applySupplierForm(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("supplier_edit: failed to update supplier %s: %v", supplierID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save supplier")
		}

		SetToast(e, "success", "Supplier updated")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/suppliers")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/suppliers")
	}
}

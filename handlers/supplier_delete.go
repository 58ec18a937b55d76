package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleSupplierDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		supplierID := e.Request.PathValue("id")
		if supplierID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing supplier ID")
		}

		record, err := app.FindRecordById("suppliers", supplierID)
		if err != nil {
			log.Printf("supplier_delete: could not find supplier %s: %v", supplierID, err)
			return ErrorToast(e, http.StatusNotFound, "Supplier not found")
		}

		excursions, err := app.FindRecordsByFilter(
			"excursions",
			"supplier = {:supplierId}",
			"", 1, 0,
			map[string]any{"supplierId": supplierID},
		)
		if err == nil && len(excursions) > 0 {
			return ErrorToast(e, http.StatusConflict, "Cannot delete supplier — it is linked to excursions")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("supplier_delete: failed to delete supplier %s: %v", supplierID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("supplier_delete: deleted supplier %s", supplierID)
		SetToast(e, "success", "Supplier deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/suppliers")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/suppliers")
	}
}

package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/services"
	"tourcrm/templates"
)

// HandleSchoolImportPage renders the upload form.
// Route: GET /schools/import
func HandleSchoolImportPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.SchoolImportData{}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.SchoolImportContent(data)
		} else {
			headerData := GetHeaderData(e.Request)
			sidebarData := GetSidebarData(e.Request)
			component = templates.SchoolImportPage(data, headerData, sidebarData)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleSchoolValidate receives a file upload, validates it, and returns
// the validation results as an HTMX partial.
// Route: POST /schools/import
func HandleSchoolValidate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		result, err := services.ValidateSchoolFile(app, file, header.Filename)
		if err != nil {
			log.Printf("school_validate: %v", err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		data := templates.SchoolImportData{Result: result}

		if result.ErrorRows == 0 {
			b, err := json.Marshal(result.ParsedRows)
			if err != nil {
				log.Printf("school_validate: marshal parsed rows: %v", err)
			} else {
				data.ParsedRowsJSON = string(b)
			}
		}
		if len(result.Errors) > 0 {
			b, err := json.Marshal(result.Errors)
			if err != nil {
				log.Printf("school_validate: marshal errors: %v", err)
			} else {
				data.ErrorsJSON = string(b)
			}
		}

		return templates.SchoolImportContent(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleSchoolImportCommit inserts the previously validated rows.
// Route: POST /schools/import/commit
func HandleSchoolImportCommit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		var parsedRows []map[string]string
		if err := json.Unmarshal([]byte(e.Request.FormValue("rows")), &parsedRows); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Missing or invalid row data — please re-validate the file")
		}
		if len(parsedRows) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "No rows to import")
		}

		result, err := services.CommitSchoolImport(app, parsedRows)
		if err != nil {
			log.Printf("school_import: commit failed: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Import failed. Please try again.")
		}

		if result.Failed > 0 {
			SetToast(e, "warning", fmt.Sprintf("Imported %d schools, %d rows failed", result.Imported, result.Failed))
		} else {
			SetToast(e, "success", fmt.Sprintf("Imported %d schools", result.Imported))
		}

		e.Response.Header().Set("HX-Redirect", "/schools")
		return e.String(http.StatusOK, "")
	}
}

// HandleSchoolErrorReport downloads the validation errors as an Excel file.
// Route: POST /schools/import/errors
func HandleSchoolErrorReport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		var errors []services.ValidationError
		if err := json.Unmarshal([]byte(e.Request.FormValue("errors")), &errors); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid error data")
		}

		xlsxBytes, err := services.GenerateErrorReport(errors)
		if err != nil {
			log.Printf("school_import: failed to generate error report: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate error report")
		}

		filename := fmt.Sprintf("School_Import_Errors_%s.xlsx", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleSchoolTemplateDownload serves the import template, as Excel by
// default or CSV with ?format=csv.
// Route: GET /schools/import/template
func HandleSchoolTemplateDownload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Request.URL.Query().Get("format") == "csv" {
			csvBytes, err := services.SchoolTemplateCSV()
			if err != nil {
				log.Printf("school_template: failed to generate CSV: %v", err)
				return e.String(http.StatusInternalServerError, "Failed to generate template")
			}
			e.Response.Header().Set("Content-Type", "text/csv")
			e.Response.Header().Set("Content-Disposition",
				`attachment; filename="School_Import_Template.csv"`)
			e.Response.Write(csvBytes)
			return nil
		}

		xlsxBytes, err := services.GenerateSchoolTemplate()
		if err != nil {
			log.Printf("school_template: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate template")
		}

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			`attachment; filename="School_Import_Template.xlsx"`)
		e.Response.Write(xlsxBytes)
		return nil
	}
}

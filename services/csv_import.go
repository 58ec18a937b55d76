package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/xuri/excelize/v2"
)

// ValidationError represents a single field-level error on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is returned after parsing and validating an uploaded file.
type ValidationResult struct {
	TotalRows  int                 `json:"total_rows"`
	ValidRows  int                 `json:"valid_rows"`
	ErrorRows  int                 `json:"error_rows"`
	Errors     []ValidationError   `json:"errors"`
	ParsedRows []map[string]string `json:"-"`
	FileName   string              `json:"-"`
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	headers := allRows[0]
	dataRows := allRows[1:]
	return headers, dataRows, nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file multipart.File) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	headers := rows[0]
	dataRows := rows[1:]
	return headers, dataRows, nil
}

// mapHeadersToFields maps uploaded column headers to TemplateField keys.
// Returns an ordered list of field keys (one per column) and any
// unrecognized columns.
func mapHeadersToFields(headers []string, fields []TemplateField) ([]string, []string) {
	labelToKey := make(map[string]string, len(fields)*2)
	for _, f := range fields {
		labelToKey[strings.ToLower(strings.TrimSpace(f.Label))] = f.Key
		// Accept the raw field key as a header too ("contact_person").
		labelToKey[f.Key] = f.Key
	}

	mapped := make([]string, len(headers))
	var unrecognized []string

	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		// Strip trailing " *" that our template adds for required fields
		norm = strings.TrimSuffix(norm, " *")
		norm = strings.TrimSpace(norm)

		if key, ok := labelToKey[norm]; ok {
			mapped[i] = key
		} else {
			mapped[i] = ""
			unrecognized = append(unrecognized, h)
		}
	}
	return mapped, unrecognized
}

// ValidateSchoolFile parses and validates an uploaded school file
// (.csv or .xlsx). Rows are checked for required fields, field formats,
// duplicates within the file, and duplicates against schools already in
// the database (matched on name + postcode).
func ValidateSchoolFile(
	app *pocketbase.PocketBase,
	file multipart.File,
	fileName string,
) (*ValidationResult, error) {
	fields := SchoolTemplateFields()

	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	if strings.HasSuffix(lowerName, ".csv") {
		headers, dataRows, err = parseCSV(file)
	} else if strings.HasSuffix(lowerName, ".xlsx") {
		headers, dataRows, err = parseExcel(file)
	} else {
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return nil, err
	}

	columnKeys, _ := mapHeadersToFields(headers, fields)

	existing, err := loadExistingSchoolKeys(app)
	if err != nil {
		return nil, fmt.Errorf("load existing schools: %w", err)
	}

	result := &ValidationResult{
		TotalRows:  len(dataRows),
		FileName:   fileName,
		ParsedRows: make([]map[string]string, 0, len(dataRows)),
	}

	keyToLabel := make(map[string]string, len(fields))
	isRequired := make(map[string]bool, len(fields))
	for _, f := range fields {
		keyToLabel[f.Key] = f.Label
		if f.Required {
			isRequired[f.Key] = true
		}
	}

	seenInFile := make(map[string]int, len(dataRows))

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		rowData := make(map[string]string)
		var rowErrors []ValidationError

		for colIdx, key := range columnKeys {
			if key == "" {
				continue
			}
			value := ""
			if colIdx < len(row) {
				value = strings.TrimSpace(row[colIdx])
			}
			rowData[key] = value
		}

		for key := range isRequired {
			if rowData[key] == "" {
				label := keyToLabel[key]
				if label == "" {
					label = key
				}
				rowErrors = append(rowErrors, ValidationError{
					Row:     rowNum,
					Field:   label,
					Message: fmt.Sprintf("%s is required", label),
				})
			}
		}

		rowErrors = append(rowErrors, validateSchoolFieldFormats(rowNum, rowData)...)

		dupKey := schoolDedupeKey(rowData["name"], rowData["postcode"])
		if dupKey != "" {
			if firstRow, ok := seenInFile[dupKey]; ok {
				rowErrors = append(rowErrors, ValidationError{
					Row:     rowNum,
					Field:   "Name",
					Message: fmt.Sprintf("Duplicate of row %d (same name and postcode)", firstRow),
				})
			} else {
				seenInFile[dupKey] = rowNum
			}
			if existing[dupKey] {
				rowErrors = append(rowErrors, ValidationError{
					Row:     rowNum,
					Field:   "Name",
					Message: "A school with this name and postcode already exists",
				})
			}
		}

		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
		}
		result.ParsedRows = append(result.ParsedRows, rowData)
	}

	errorRowSet := make(map[int]bool)
	for _, e := range result.Errors {
		errorRowSet[e.Row] = true
	}
	result.ErrorRows = len(errorRowSet)
	result.ValidRows = result.TotalRows - result.ErrorRows

	return result, nil
}

// validateSchoolFieldFormats checks format-specific rules for non-empty values.
func validateSchoolFieldFormats(rowNum int, data map[string]string) []ValidationError {
	var errs []ValidationError

	if v := data["email"]; v != "" && !ValidateEmail(v) {
		errs = append(errs, ValidationError{Row: rowNum, Field: "Email", Message: "Invalid email format"})
	}
	if v := data["postcode"]; v != "" && !ValidatePostcode(v) {
		errs = append(errs, ValidationError{Row: rowNum, Field: "Postcode", Message: "Invalid UK postcode"})
	}
	if v := data["phone"]; v != "" && !ValidatePhone(v) {
		errs = append(errs, ValidationError{Row: rowNum, Field: "Phone", Message: "Phone must be 7-19 digits, with optional +, spaces or hyphens"})
	}

	return errs
}

// schoolDedupeKey builds the duplicate-detection key for a school row.
// Returns "" when either part is missing, which disables the check for
// that row (the required-field errors already cover it).
func schoolDedupeKey(name, postcode string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	postcode = strings.ToLower(strings.Join(strings.Fields(postcode), ""))
	if name == "" || postcode == "" {
		return ""
	}
	return name + "|" + postcode
}

// loadExistingSchoolKeys fetches dedupe keys for every school already stored.
func loadExistingSchoolKeys(app *pocketbase.PocketBase) (map[string]bool, error) {
	col, err := app.FindCollectionByNameOrId("schools")
	if err != nil {
		return make(map[string]bool), nil
	}

	records, err := app.FindRecordsByFilter(col, "id != ''", "", 0, 0)
	if err != nil {
		return make(map[string]bool), nil
	}

	keys := make(map[string]bool, len(records))
	for _, r := range records {
		if k := schoolDedupeKey(r.GetString("name"), r.GetString("postcode")); k != "" {
			keys[k] = true
		}
	}
	return keys, nil
}

// GenerateErrorReport creates a downloadable .xlsx file from validation errors.
func GenerateErrorReport(errors []ValidationError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Errors"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", "Row #")
	f.SetCellValue(sheet, "B1", "Field")
	f.SetCellValue(sheet, "C1", "Error")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "C", "C", 55)

	for i, e := range errors {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+row, e.Row)
		f.SetCellValue(sheet, "B"+row, e.Field)
		f.SetCellValue(sheet, "C"+row, e.Message)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}

package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"tourcrm/testhelpers"
)

// memFile adapts an in-memory buffer to the multipart.File interface.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newMemFile(content string) memFile {
	return memFile{bytes.NewReader([]byte(content))}
}

func TestMapHeadersToFields(t *testing.T) {
	fields := SchoolTemplateFields()

	headers := []string{"Name *", "  email ", "Contact Person", "contact_person", "Mystery Column"}
	mapped, unrecognized := mapHeadersToFields(headers, fields)

	want := []string{"name", "email", "contact_person", "contact_person", ""}
	for i, w := range want {
		if mapped[i] != w {
			t.Errorf("mapped[%d] = %q, want %q", i, mapped[i], w)
		}
	}
	if len(unrecognized) != 1 || unrecognized[0] != "Mystery Column" {
		t.Errorf("unrecognized = %v, want [Mystery Column]", unrecognized)
	}
}

func TestValidateSchoolFile(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	csvData := "Name,Address,City,Postcode,Phone,Email\n" +
		"Westminster Academy,123 Education Street,London,SW1A 1AA,020 7946 0958,admin@westminster-academy.co.uk\n" +
		"Oakwood High School,456 School Lane,Manchester,M1 1AA,0161 123 4567,not-an-email\n" +
		",789 River Road,Cambridge,CB1 1AA,01223 123456,trips@riverside-college.ac.uk\n"

	result, err := ValidateSchoolFile(app, newMemFile(csvData), "schools.csv")
	if err != nil {
		t.Fatalf("ValidateSchoolFile() error: %v", err)
	}

	if result.TotalRows != 3 {
		t.Errorf("TotalRows = %d, want 3", result.TotalRows)
	}
	if result.ValidRows != 1 {
		t.Errorf("ValidRows = %d, want 1", result.ValidRows)
	}
	if result.ErrorRows != 2 {
		t.Errorf("ErrorRows = %d, want 2", result.ErrorRows)
	}

	var sawBadEmail, sawMissingName bool
	for _, e := range result.Errors {
		if e.Row == 3 && e.Field == "Email" {
			sawBadEmail = true
		}
		if e.Row == 4 && e.Field == "Name" && strings.Contains(e.Message, "required") {
			sawMissingName = true
		}
	}
	if !sawBadEmail {
		t.Error("expected an email format error on row 3")
	}
	if !sawMissingName {
		t.Error("expected a missing-name error on row 4")
	}
}

func TestValidateSchoolFileDuplicates(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSchool(t, app, "Westminster Academy")

	// Row 2 duplicates the existing record (same name + postcode as the
	// helper's default), row 3 duplicates row 2 within the file.
	csvData := "Name,Address,City,Postcode,Phone,Email\n" +
		"Westminster Academy,1 Test Street,Leeds,LS1 4AB,0113 496 0123,office@test-school.example.uk\n" +
		"Westminster Academy,1 Test Street,Leeds,LS1 4AB,0113 496 0123,office@test-school.example.uk\n"

	result, err := ValidateSchoolFile(app, newMemFile(csvData), "schools.csv")
	if err != nil {
		t.Fatalf("ValidateSchoolFile() error: %v", err)
	}

	if result.ErrorRows != 2 {
		t.Fatalf("ErrorRows = %d, want 2", result.ErrorRows)
	}

	var sawExisting, sawInFile bool
	for _, e := range result.Errors {
		if strings.Contains(e.Message, "already exists") {
			sawExisting = true
		}
		if strings.Contains(e.Message, "Duplicate of row") {
			sawInFile = true
		}
	}
	if !sawExisting {
		t.Error("expected a duplicate-against-database error")
	}
	if !sawInFile {
		t.Error("expected a duplicate-within-file error")
	}
}

func TestValidateSchoolFileRejectsUnknownFormat(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, err := ValidateSchoolFile(app, newMemFile("irrelevant"), "schools.txt"); err == nil {
		t.Error("expected an error for unsupported file format")
	}
	if _, err := ValidateSchoolFile(app, newMemFile("Name,Email\n"), "schools.csv"); err == nil {
		t.Error("expected an error for a file with no data rows")
	}
}

func TestSchoolDedupeKey(t *testing.T) {
	a := schoolDedupeKey("Westminster Academy", "SW1A 1AA")
	b := schoolDedupeKey("  westminster academy ", "sw1a1aa")
	if a == "" || a != b {
		t.Errorf("dedupe keys should match case/space-insensitively: %q vs %q", a, b)
	}
	if schoolDedupeKey("", "SW1A 1AA") != "" {
		t.Error("missing name should disable the dedupe key")
	}
	if schoolDedupeKey("X", "") != "" {
		t.Error("missing postcode should disable the dedupe key")
	}
}

func TestCommitSchoolImport(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rows := []map[string]string{
		{
			"name": "Westminster Academy", "address": "123 Education Street", "city": "London",
			"postcode": "SW1A 1AA", "phone": "020 7946 0958", "email": "admin@westminster-academy.co.uk",
			"contact_person": "Sarah Johnson",
		},
		{
			"name": "Oakwood High School", "address": "456 School Lane", "city": "Manchester",
			"postcode": "M1 1AA", "phone": "0161 123 4567", "email": "info@oakwood-high.co.uk",
		},
	}

	result, err := CommitSchoolImport(app, rows)
	if err != nil {
		t.Fatalf("CommitSchoolImport() error: %v", err)
	}
	if result.Imported != 2 || result.Failed != 0 {
		t.Errorf("import result = %+v, want 2 imported, 0 failed", result)
	}

	col, err := app.FindCollectionByNameOrId("schools")
	if err != nil {
		t.Fatalf("find schools collection: %v", err)
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		t.Fatalf("load schools: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 school records, got %d", len(records))
	}

	found := make(map[string]bool)
	for _, r := range records {
		found[r.GetString("name")] = true
	}
	if !found["Westminster Academy"] || !found["Oakwood High School"] {
		t.Errorf("imported schools missing, got %v", found)
	}
}

func TestSchoolTemplateCSV(t *testing.T) {
	data, err := SchoolTemplateCSV()
	if err != nil {
		t.Fatalf("SchoolTemplateCSV() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + example row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Name *") {
		t.Errorf("header missing required marker: %q", lines[0])
	}
	if !strings.Contains(lines[0], "Website") {
		t.Errorf("header missing optional column: %q", lines[0])
	}
}

func TestGenerateSchoolTemplate(t *testing.T) {
	data, err := GenerateSchoolTemplate()
	if err != nil {
		t.Fatalf("GenerateSchoolTemplate() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("template is not a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Schools")
	if err != nil {
		t.Fatalf("read Schools sheet: %v", err)
	}
	if len(rows) == 0 || len(rows[0]) != len(SchoolTemplateFields()) {
		t.Fatalf("template header has %d columns, want %d", len(rows[0]), len(SchoolTemplateFields()))
	}
	if rows[0][0] != "Name *" {
		t.Errorf("first header = %q, want \"Name *\"", rows[0][0])
	}
}

func TestGenerateErrorReport(t *testing.T) {
	data, err := GenerateErrorReport([]ValidationError{
		{Row: 2, Field: "Email", Message: "Invalid email format"},
		{Row: 5, Field: "Name", Message: "Name is required"},
	})
	if err != nil {
		t.Fatalf("GenerateErrorReport() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("report is not a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Errors")
	if err != nil {
		t.Fatalf("read Errors sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 error rows, got %d", len(rows))
	}
	if rows[1][2] != "Invalid email format" {
		t.Errorf("first error message = %q", rows[1][2])
	}
}

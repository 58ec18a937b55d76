package services

// TemplateField describes one column in a school import template.
type TemplateField struct {
	Key          string // internal name, matches PocketBase field name
	Label        string // human-readable header shown in the file
	Description  string // shown on the Instructions sheet
	FormatRule   string // e.g. "valid email", ""
	ExampleValue string // shown on the Instructions sheet
	Required     bool
}

// SchoolTemplateFields returns the ordered list of columns for school
// import files.
func SchoolTemplateFields() []TemplateField {
	return []TemplateField{
		{Key: "name", Label: "Name", Description: "Full school name", ExampleValue: "St Mary's Academy", Required: true},
		{Key: "address", Label: "Address", Description: "Street address", ExampleValue: "14 Church Lane", Required: true},
		{Key: "city", Label: "City", Description: "Town or city", ExampleValue: "Leeds", Required: true},
		{Key: "postcode", Label: "Postcode", Description: "UK postcode", FormatRule: "Valid UK postcode", ExampleValue: "LS1 4AB", Required: true},
		{Key: "phone", Label: "Phone", Description: "Main office number", ExampleValue: "0113 496 0123", Required: true},
		{Key: "email", Label: "Email", Description: "Office or trips-coordinator email", FormatRule: "Valid email address", ExampleValue: "office@stmarys.example.uk", Required: true},
		{Key: "website", Label: "Website", Description: "School website URL", ExampleValue: "https://stmarys.example.uk"},
		{Key: "contact_person", Label: "Contact Person", Description: "Trip organiser or head of year", ExampleValue: "J. Whitfield"},
		{Key: "notes", Label: "Notes", Description: "Anything worth remembering about the school", ExampleValue: "Prefers February half-term departures"},
	}
}

// importSchoolFieldKeys lists the record fields populated from an import row.
func importSchoolFieldKeys() []string {
	fields := SchoolTemplateFields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

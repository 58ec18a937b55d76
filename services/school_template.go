package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateSchoolTemplate creates a downloadable .xlsx template for bulk
// school imports: a styled header row, a frozen pane and a hidden
// Instructions sheet describing each column.
func GenerateSchoolTemplate() ([]byte, error) {
	fields := SchoolTemplateFields()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Schools"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheetName)

	requiredHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})

	optionalHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#6B7280"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})

	columns := columnLetters(len(fields))
	for i, field := range fields {
		cell := fmt.Sprintf("%s1", columns[i])

		headerText := field.Label
		if field.Required {
			headerText += " *"
		}
		f.SetCellValue(sheetName, cell, headerText)

		if field.Required {
			f.SetCellStyle(sheetName, cell, cell, requiredHeaderStyle)
		} else {
			f.SetCellStyle(sheetName, cell, cell, optionalHeaderStyle)
		}

		width := float64(len(field.Label)) * 1.3
		if width < 15 {
			width = 15
		}
		f.SetColWidth(sheetName, columns[i], columns[i], width)
	}

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	addSchoolInstructionsSheet(f, fields)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel template: %w", err)
	}
	return buf.Bytes(), nil
}

// addSchoolInstructionsSheet creates a hidden sheet with field descriptions.
func addSchoolInstructionsSheet(f *excelize.File, fields []TemplateField) {
	instSheet := "Instructions"
	f.NewSheet(instSheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#374151"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(instSheet, "A1", "School Import - Column Guide")
	f.SetCellStyle(instSheet, "A1", "A1", titleStyle)

	instructionHeaders := []string{"Column", "Required", "Description", "Format", "Example"}
	cols := columnLetters(len(instructionHeaders))
	for i, h := range instructionHeaders {
		cell := fmt.Sprintf("%s3", cols[i])
		f.SetCellValue(instSheet, cell, h)
		f.SetCellStyle(instSheet, cell, cell, headerStyle)
	}

	for i, field := range fields {
		row := fmt.Sprintf("%d", i+4)
		required := "No"
		if field.Required {
			required = "Yes"
		}
		f.SetCellValue(instSheet, "A"+row, field.Label)
		f.SetCellValue(instSheet, "B"+row, required)
		f.SetCellValue(instSheet, "C"+row, field.Description)
		f.SetCellValue(instSheet, "D"+row, field.FormatRule)
		f.SetCellValue(instSheet, "E"+row, field.ExampleValue)
	}

	f.SetColWidth(instSheet, "A", "A", 18)
	f.SetColWidth(instSheet, "B", "B", 10)
	f.SetColWidth(instSheet, "C", "C", 48)
	f.SetColWidth(instSheet, "D", "D", 24)
	f.SetColWidth(instSheet, "E", "E", 34)
}

// SchoolTemplateCSV returns the import template as CSV bytes for users
// who prefer a plain-text starting point.
func SchoolTemplateCSV() ([]byte, error) {
	fields := SchoolTemplateFields()

	header := make([]string, len(fields))
	example := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Label
		if f.Required {
			header[i] += " *"
		}
		example[i] = f.ExampleValue
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write template header: %w", err)
	}
	if err := w.Write(example); err != nil {
		return nil, fmt.Errorf("write template example row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush template csv: %w", err)
	}
	return buf.Bytes(), nil
}

func columnLetters(n int) []string {
	cols := make([]string, n)
	for i := 0; i < n; i++ {
		name, _ := excelize.ColumnNumberToName(i + 1)
		cols[i] = name
	}
	return cols
}

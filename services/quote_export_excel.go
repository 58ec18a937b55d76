package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates an Excel rendering of a quotation: tour details
// block, the full cost breakdown table, and the calculated totals. Returns
// the file contents as a byte slice.
func GenerateQuoteExcel(q *Quotation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quotation"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through G).
	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{34, 16, 20, 12, 12, 12, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	title := "Educational Tour Quotation"
	if q.SchoolName != "" {
		title = q.SchoolName + " - Tour Quotation"
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	details := []string{
		"Destination: " + q.Destination,
		"Party Leader: " + q.PartyLeader,
		fmt.Sprintf("Accommodation: %s (%s)", q.Accommodation, q.Board),
		fmt.Sprintf("Dates: %s to %s", q.DateOut, q.DateBack),
		fmt.Sprintf("Pax: %d    Markup: %.1f%%    Free Place Ratio: %s    X/R: %v",
			q.Pax, q.MarkupPercent, q.FreePlaceRatio, q.ExchangeRate),
	}
	row := 2
	for _, d := range details {
		rowStr := fmt.Sprintf("%d", row)
		if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
			return nil, fmt.Errorf("merge detail row: %w", err)
		}
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(d))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, subtitleStyle)
		row++
	}

	// ── Cost Table ──────────────────────────────────────────────────────

	row++ // blank separator row
	headerRow := fmt.Sprintf("%d", row)
	headers := []string{"Item Description", "Price Per Unit", "Unit", "Qty Students", "Qty Adults", "Days", "Subtotal"}
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+headerRow, h)
	}
	f.SetCellStyle(sheetName, "A"+headerRow, lastCol+headerRow, headerStyle)
	row++

	for _, item := range q.CostItems {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(item.Description))
		f.SetCellValue(sheetName, "B"+rowStr, FormatGBP(item.PricePerUnit))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(item.Unit))
		f.SetCellValue(sheetName, "D"+rowStr, item.QuantityStudents)
		f.SetCellValue(sheetName, "E"+rowStr, item.QuantityAdults)
		f.SetCellValue(sheetName, "F"+rowStr, item.DaysRequired)
		f.SetCellValue(sheetName, "G"+rowStr, FormatGBP(item.Subtotal))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, itemStyle)
		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++ // blank separator row
	summaries := []struct {
		label string
		value string
	}{
		{"Total Cost:", FormatGBP(q.Totals.TotalCost)},
		{fmt.Sprintf("Net Total (%.1f%% markup):", q.MarkupPercent), FormatGBP(q.Totals.NetTotal)},
		{"Profit:", FormatGBP(q.Totals.Profit)},
		{"Price Per Person:", FormatGBP(q.Totals.PricePerPerson)},
		{"Calculated Free Places:", fmt.Sprintf("%d", q.Totals.CalculatedFreePlaces)},
		{"Profit Per Head:", FormatGBP(q.Totals.ProfitPerHead)},
	}
	for _, s := range summaries {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "F"+rowStr, s.label)
		f.SetCellStyle(sheetName, "F"+rowStr, "F"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "G"+rowStr, s.value)
		f.SetCellStyle(sheetName, "G"+rowStr, "G"+rowStr, summaryValueStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}

package services

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates a print-ready PDF of a quotation using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotePDF(q *Quotation, now time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, q, now)
	addQuoteTableHeader(m)
	for _, item := range q.CostItems {
		addQuoteTableRow(m, item)
	}
	addQuoteSummary(m, q)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the title and the tour details block.
func addQuoteHeader(m core.Maroto, q *Quotation, now time.Time) {
	title := "Educational Tour Quotation"
	if q.SchoolName != "" {
		title = q.SchoolName + " - Tour Quotation"
	}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	grey := &props.Color{Red: 80, Green: 80, Blue: 80}
	detail := props.Text{Size: 9, Align: align.Left, Color: grey}
	detailRight := props.Text{Size: 9, Align: align.Right, Color: grey}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("Destination: "+q.Destination, detail)),
			col.New(6).Add(text.New("Date: "+now.Format("02 Jan 2006"), detailRight)),
		),
		row.New(6).Add(
			col.New(6).Add(text.New("Party Leader: "+q.PartyLeader, detail)),
			col.New(6).Add(text.New(fmt.Sprintf("Travel: %s to %s", q.DateOut, q.DateBack), detailRight)),
		),
		row.New(6).Add(
			col.New(6).Add(text.New(fmt.Sprintf("Accommodation: %s (%s)", q.Accommodation, q.Board), detail)),
			col.New(6).Add(text.New(fmt.Sprintf("Pax: %d    Free Places: %d", q.Pax, q.Totals.CalculatedFreePlaces), detailRight)),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addQuoteTableHeader adds the column header row of the cost breakdown.
func addQuoteTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 29, Green: 78, Blue: 216}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New("Item Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Price/Unit", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Students", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Adults", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Days", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Subtotal", headerText)).WithStyle(&headerCell),
		),
	)
}

// addQuoteTableRow adds a single cost item row. Rows with a zero subtotal
// are rendered in grey so the priced items stand out on the page.
func addQuoteTableRow(m core.Maroto, item CostItem) {
	baseText := props.Text{Size: 8, Align: align.Center}
	if item.Subtotal == 0 {
		baseText.Color = &props.Color{Red: 150, Green: 150, Blue: 150}
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	desc := item.Description
	if item.Overridable && item.ManualSubtotal != nil {
		desc += " (manual)"
	}

	m.AddRows(
		row.New(7).Add(
			col.New(4).Add(text.New(desc, leftText)),
			col.New(2).Add(text.New(FormatGBP(item.PricePerUnit), rightText)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.QuantityStudents), baseText)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.QuantityAdults), baseText)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.DaysRequired), baseText)),
			col.New(3).Add(text.New(FormatGBP(item.Subtotal), rightText)),
		),
	)
}

// addQuoteSummary adds the calculated totals at the bottom of the PDF.
func addQuoteSummary(m core.Maroto, q *Quotation) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	rowsData := []struct {
		label string
		value string
	}{
		{"Total Cost", FormatGBP(q.Totals.TotalCost)},
		{fmt.Sprintf("Net Total (%.1f%% markup)", q.MarkupPercent), FormatGBP(q.Totals.NetTotal)},
		{"Profit", FormatGBP(q.Totals.Profit)},
		{"Price Per Person", FormatGBP(q.Totals.PricePerPerson)},
		{"Calculated Free Places", fmt.Sprintf("%d", q.Totals.CalculatedFreePlaces)},
		{"Profit Per Head", FormatGBP(q.Totals.ProfitPerHead)},
	}

	for _, r := range rowsData {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(r.label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(r.value, valueStyle)).WithStyle(summaryCell),
			),
		)
	}
}

package templates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"tourcrm/services"
)

// QuoteListItem is one row of the open quote sessions table.
type QuoteListItem struct {
	ID         string
	SchoolName string
	Destination string
	Pax        int
	NetTotal   float64
}

// QuoteListData carries the quotes list view state.
type QuoteListData struct {
	Quotes []QuoteListItem
}

// QuoteListContent renders the open quote sessions for HTMX fragment swaps.
func QuoteListContent(data QuoteListData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"list-page\" id=\"quote-list\">\n")
	b.WriteString("<div class=\"list-header\">\n<h1>Quotes</h1>\n")
	b.WriteString("<a class=\"btn primary\" href=\"/quotes/new\">New Quote</a>\n</div>\n")

	if len(data.Quotes) == 0 {
		b.WriteString("<p class=\"empty\">No open quotes. Start a new one to price a tour.</p>\n")
	} else {
		b.WriteString("<table class=\"data-table\">\n<thead><tr>" +
			"<th>School</th><th>Destination</th><th>Pax</th><th>Net Total</th><th></th>" +
			"</tr></thead>\n<tbody>\n")
		for _, q := range data.Quotes {
			school := q.SchoolName
			if school == "" {
				school = "(unnamed)"
			}
			fmt.Fprintf(&b, "<tr>"+
				"<td><a href=\"/quotes/%s\">%s</a></td>"+
				"<td>%s</td><td class=\"num\">%d</td><td class=\"num\">%s</td>"+
				"<td class=\"row-actions\">"+
				"<button class=\"btn danger\" hx-delete=\"/quotes/%s\" hx-confirm=\"Discard this quote?\" hx-target=\"#quote-list\" hx-swap=\"outerHTML\">Discard</button>"+
				"</td></tr>\n",
				attr(q.ID), esc(school),
				esc(q.Destination), q.Pax, services.FormatGBP(q.NetTotal),
				attr(q.ID))
		}
		b.WriteString("</tbody>\n</table>\n")
	}
	b.WriteString("</section>\n")
	return raw(b.String())
}

// QuoteListPage renders the full quotes list document.
func QuoteListPage(data QuoteListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Quotes", QuoteListContent(data), header, sidebar)
}

// QuoteFormContent renders the whole quote editor: the trip details form,
// then the live results block (cost table and totals).
func QuoteFormContent(q *services.Quotation) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"quote-page\" id=\"quote-form\">\n")

	heading := "New Quote"
	if q.SchoolName != "" {
		heading = "Quote for " + q.SchoolName
	}
	fmt.Fprintf(&b, "<div class=\"list-header\">\n<h1>%s</h1>\n", esc(heading))
	b.WriteString("<div class=\"list-actions\">\n")
	fmt.Fprintf(&b, "<a class=\"btn\" href=\"/quotes/%s/export/json\">JSON</a>\n", attr(q.ID))
	fmt.Fprintf(&b, "<a class=\"btn\" href=\"/quotes/%s/export/excel\">Excel</a>\n", attr(q.ID))
	fmt.Fprintf(&b, "<a class=\"btn\" href=\"/quotes/%s/export/pdf\">PDF</a>\n", attr(q.ID))
	b.WriteString("</div>\n</div>\n")

	b.WriteString(renderQuoteDetails(q))
	fmt.Fprintf(&b, "<div id=\"quote-results\">\n%s</div>\n", renderQuoteResults(q))
	b.WriteString("</section>\n")
	return raw(b.String())
}

// QuoteFormPage renders the full quote editor document.
func QuoteFormPage(q *services.Quotation, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Quote", QuoteFormContent(q), header, sidebar)
}

// QuoteResults renders only the live results block, returned by every
// item or detail mutation so the table and totals refresh together.
func QuoteResults(q *services.Quotation) templ.Component {
	return raw(renderQuoteResults(q))
}

func renderQuoteDetails(q *services.Quotation) string {
	var b strings.Builder
	detailURL := fmt.Sprintf("/quotes/%s/details", q.ID)

	fmt.Fprintf(&b, "<form class=\"quote-details\" hx-post=\"%s\" hx-trigger=\"change\" hx-target=\"#quote-results\" hx-swap=\"innerHTML\">\n", attr(detailURL))

	writeQuoteText(&b, "school_name", "School Name", q.SchoolName)
	writeQuoteText(&b, "party_leader", "Party Leader", q.PartyLeader)
	writeQuoteText(&b, "destination", "Destination", q.Destination)
	writeQuoteText(&b, "accommodation", "Accommodation", q.Accommodation)

	fmt.Fprintf(&b, "<label class=\"field\"><span>Board</span><select name=\"board\">%s</select></label>\n",
		selectOptions(services.BoardOptions, q.Board))

	fmt.Fprintf(&b, "<label class=\"field\"><span>Date Out (UK)</span><input type=\"date\" name=\"date_out\" value=\"%s\"></label>\n", attr(q.DateOut))
	fmt.Fprintf(&b, "<label class=\"field\"><span>Date Back (UK)</span><input type=\"date\" name=\"date_back\" value=\"%s\"></label>\n", attr(q.DateBack))

	writeQuoteNumber(&b, "pax", "Pax", fmt.Sprintf("%d", q.Pax), "1")
	writeQuoteNumber(&b, "free_places", "Free Places", fmt.Sprintf("%d", q.FreePlaces), "1")
	writeQuoteNumber(&b, "markup", "Markup %", trimFloat(q.MarkupPercent), "0.1")
	writeQuoteText(&b, "free_place_ratio", "Free Place Ratio", q.FreePlaceRatio)
	writeQuoteNumber(&b, "exchange_rate", "Exchange Rate (€→£)", trimFloat(q.ExchangeRate), "0.0001")

	b.WriteString("</form>\n")
	return b.String()
}

func renderQuoteResults(q *services.Quotation) string {
	var b strings.Builder
	b.WriteString(renderCostTable(q))
	b.WriteString(renderAddItemForm(q))
	b.WriteString(renderTotals(q))
	b.WriteString(renderCurrencyConverter(q))
	return b.String()
}

func renderCostTable(q *services.Quotation) string {
	var b strings.Builder
	b.WriteString("<table class=\"data-table cost-table\">\n<thead><tr>" +
		"<th>Item</th><th>Price/Unit</th><th>Unit</th><th>Students</th><th>Adults</th><th>Days</th><th>Subtotal</th><th></th>" +
		"</tr></thead>\n<tbody>\n")

	for _, item := range q.CostItems {
		patchURL := fmt.Sprintf("/quotes/%s/items/%s", q.ID, item.ID)
		b.WriteString("<tr>")

		if item.Fixed {
			fmt.Fprintf(&b, "<td>%s</td>", esc(item.Description))
		} else {
			fmt.Fprintf(&b, "<td>%s</td>", quoteItemInput(patchURL, services.FieldDescription, "text", item.Description, ""))
		}

		fmt.Fprintf(&b, "<td>%s</td>", quoteItemInput(patchURL, services.FieldPricePerUnit, "number", trimFloat(item.PricePerUnit), "0.01"))
		if item.Fixed {
			fmt.Fprintf(&b, "<td>%s</td>", esc(item.Unit))
		} else {
			fmt.Fprintf(&b, "<td><select name=\"value\" hx-patch=\"%s\" hx-vals='{\"field\":\"%s\"}' hx-target=\"#quote-results\" hx-swap=\"innerHTML\">%s</select></td>",
				attr(patchURL), services.FieldUnit, selectOptions(services.UnitOptions, item.Unit))
		}
		fmt.Fprintf(&b, "<td>%s</td>", quoteItemInput(patchURL, services.FieldQuantityStudents, "number", fmt.Sprintf("%d", item.QuantityStudents), "1"))
		fmt.Fprintf(&b, "<td>%s</td>", quoteItemInput(patchURL, services.FieldQuantityAdults, "number", fmt.Sprintf("%d", item.QuantityAdults), "1"))
		fmt.Fprintf(&b, "<td>%s</td>", quoteItemInput(patchURL, services.FieldDaysRequired, "number", fmt.Sprintf("%d", item.DaysRequired), "1"))

		if item.Overridable {
			marker := ""
			if item.ManualSubtotal != nil {
				marker = "<span class=\"manual-marker\" title=\"Manually entered\">*</span>"
			}
			fmt.Fprintf(&b, "<td class=\"num\">%s%s</td>",
				quoteItemInput(patchURL, services.FieldSubtotal, "number", trimFloat(item.Subtotal), "0.01"), marker)
		} else {
			fmt.Fprintf(&b, "<td class=\"num\">%s</td>", services.FormatGBP(item.Subtotal))
		}

		if item.Fixed {
			b.WriteString("<td></td>")
		} else {
			fmt.Fprintf(&b, "<td class=\"row-actions\"><button class=\"btn danger\" hx-delete=\"%s\" hx-target=\"#quote-results\" hx-swap=\"innerHTML\">Remove</button></td>",
				attr(patchURL))
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>\n")
	return b.String()
}

func renderAddItemForm(q *services.Quotation) string {
	var b strings.Builder
	addURL := fmt.Sprintf("/quotes/%s/items", q.ID)
	fmt.Fprintf(&b, "<form class=\"add-item\" hx-post=\"%s\" hx-target=\"#quote-results\" hx-swap=\"innerHTML\">\n", attr(addURL))
	b.WriteString("<input type=\"text\" name=\"description\" placeholder=\"New cost item\" required>\n")
	fmt.Fprintf(&b, "<select name=\"unit\">%s</select>\n", selectOptions(services.UnitOptions, services.UnitPerPerson))
	b.WriteString("<input type=\"number\" name=\"price_per_unit\" step=\"0.01\" min=\"0\" placeholder=\"Price\">\n")
	b.WriteString("<input type=\"number\" name=\"quantity_students\" step=\"1\" min=\"0\" placeholder=\"Students\">\n")
	b.WriteString("<input type=\"number\" name=\"quantity_adults\" step=\"1\" min=\"0\" placeholder=\"Adults\">\n")
	b.WriteString("<input type=\"number\" name=\"days_required\" step=\"1\" min=\"1\" value=\"1\">\n")
	b.WriteString("<button type=\"submit\" class=\"btn primary\">Add Item</button>\n</form>\n")
	return b.String()
}

func renderTotals(q *services.Quotation) string {
	t := q.Totals

	var b strings.Builder
	b.WriteString("<section class=\"quote-totals\">\n<h2>Calculations</h2>\n<dl>\n")
	writeTotal(&b, "Total Cost", services.FormatGBP(t.TotalCost))
	writeTotal(&b, fmt.Sprintf("Net Total (%s%% markup)", trimFloat(q.MarkupPercent)), services.FormatGBP(t.NetTotal))
	writeTotal(&b, "Profit", services.FormatGBP(t.Profit))
	writeTotal(&b, "Price Per Person", services.FormatGBP(t.PricePerPerson))
	writeTotal(&b, "Calculated Free Places", fmt.Sprintf("%d", t.CalculatedFreePlaces))
	writeTotal(&b, "Full Paying Pax", fmt.Sprintf("%d", t.FullPayingPax))
	writeTotal(&b, "Profit Per Head", services.FormatGBP(t.ProfitPerHead))
	b.WriteString("</dl>\n</section>\n")
	return b.String()
}

func renderCurrencyConverter(q *services.Quotation) string {
	var b strings.Builder
	detailURL := fmt.Sprintf("/quotes/%s/details", q.ID)
	b.WriteString("<section class=\"currency-converter\">\n<h2>Currency Converter</h2>\n")
	fmt.Fprintf(&b, "<form hx-post=\"%s\" hx-trigger=\"change\" hx-target=\"#quote-results\" hx-swap=\"innerHTML\">\n", attr(detailURL))
	fmt.Fprintf(&b, "<label class=\"field\"><span>Amount (€)</span><input type=\"number\" name=\"euro_amount\" value=\"%s\" step=\"0.01\" min=\"0\"></label>\n",
		attr(trimFloat(q.EuroAmount)))
	fmt.Fprintf(&b, "<p class=\"converted\">= %s at %s</p>\n",
		services.FormatGBP(q.Totals.ConvertedAmount), esc(trimFloat(q.ExchangeRate)))
	b.WriteString("</form>\n</section>\n")
	return b.String()
}

// quoteItemInput renders one live-editing input wired to a PATCH route.
// The edited field name travels in hx-vals, the new value in "value".
func quoteItemInput(patchURL, field, inputType, value, step string) string {
	stepAttr := ""
	if step != "" {
		stepAttr = fmt.Sprintf(" step=\"%s\"", attr(step))
	}
	return fmt.Sprintf("<input type=\"%s\" name=\"value\" value=\"%s\"%s"+
		" hx-patch=\"%s\" hx-vals='{\"field\":\"%s\"}' hx-trigger=\"change\" hx-target=\"#quote-results\" hx-swap=\"innerHTML\">",
		attr(inputType), attr(value), stepAttr, attr(patchURL), field)
}

func writeQuoteText(b *strings.Builder, name, label, value string) {
	fmt.Fprintf(b, "<label class=\"field\"><span>%s</span><input type=\"text\" name=\"%s\" value=\"%s\"></label>\n",
		esc(label), attr(name), attr(value))
}

func writeQuoteNumber(b *strings.Builder, name, label, value, step string) {
	fmt.Fprintf(b, "<label class=\"field\"><span>%s</span><input type=\"number\" name=\"%s\" value=\"%s\" step=\"%s\" min=\"0\"></label>\n",
		esc(label), attr(name), attr(value), attr(step))
}

func writeTotal(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<div class=\"total-row\"><dt>%s</dt><dd>%s</dd></div>\n", esc(label), value)
}

// trimFloat formats a float at full precision without trailing zeros, for
// input values. Anything shorter would feed a rounded value back into the
// engine when the details form re-posts.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

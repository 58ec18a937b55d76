// Package services provides the quotation cost-calculation engine and
// supporting domain logic for the tour CRM.
package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// CostItem is a single row of the quotation cost breakdown.
// Overridable marks the one checklist item (accommodation) whose subtotal
// may be entered manually instead of derived from the formula.
type CostItem struct {
	ID               string   `json:"id"`
	Description      string   `json:"description"`
	PricePerUnit     float64  `json:"pricePerUnit"`
	Unit             string   `json:"unit"`
	QuantityStudents int      `json:"quantityStudents"`
	QuantityAdults   int      `json:"quantityAdults"`
	DaysRequired     int      `json:"daysRequired"`
	Subtotal         float64  `json:"subtotal"`
	Fixed            bool     `json:"isFixed"`
	Overridable      bool     `json:"isOverridable"`
	ManualSubtotal   *float64 `json:"manualSubtotal,omitempty"`
}

// QuoteTotals holds every derived figure of a quotation.
type QuoteTotals struct {
	TotalCost            float64 `json:"totalCost"`
	NetTotal             float64 `json:"netTotal"`
	Profit               float64 `json:"profit"`
	PricePerPerson       float64 `json:"pricePerPerson"`
	ProfitPerHead        float64 `json:"profitPerHead"`
	CalculatedFreePlaces int     `json:"calculatedFreePlaces"`
	FullPayingPax        int     `json:"fullPayingPax"`
	ConvertedAmount      float64 `json:"gbpAmount"`
}

// Quotation is the in-memory aggregate for one quoting session. It is never
// persisted; the editing session owns the single instance and every mutation
// goes through AddItem/RemoveItem/UpdateItem followed by Recompute.
type Quotation struct {
	ID             string  `json:"id"`
	SchoolName     string  `json:"schoolName"`
	PartyLeader    string  `json:"partyLeader"`
	Destination    string  `json:"destination"`
	Accommodation  string  `json:"accommodation"`
	Board          string  `json:"board"`
	DateOut        string  `json:"dateOutUK"`
	DateBack       string  `json:"dateBackUK"`
	Pax            int     `json:"pax"`
	FreePlaces     int     `json:"freePlaces"`
	ExchangeRate   float64 `json:"exchangeRate"`
	MarkupPercent  float64 `json:"markup"`
	FreePlaceRatio string  `json:"freePlaceRatio"`
	EuroAmount     float64 `json:"euroAmount"`

	CostItems []CostItem  `json:"costItems"`
	Totals    QuoteTotals `json:"totals"`
}

// NewQuotation creates a fresh quotation with the standard cost checklist
// pre-populated at zero values and the default exchange rate and free-place
// ratio already filled in.
func NewQuotation() *Quotation {
	q := &Quotation{
		ID:             uuid.NewString(),
		ExchangeRate:   0.85,
		FreePlaceRatio: "1:10",
		CostItems:      FixedCostItems(),
	}
	q.Recompute()
	return q
}

// ComputeSubtotal derives the subtotal for a single cost item.
// An overridable item with a manual subtotal returns the override unchanged;
// everything else uses price × (students + adults) × days at full float
// precision. Rounding to 2 decimals happens only at display time.
func ComputeSubtotal(item CostItem) float64 {
	if item.Overridable && item.ManualSubtotal != nil {
		return *item.ManualSubtotal
	}
	return item.PricePerUnit * float64(item.QuantityStudents+item.QuantityAdults) * float64(item.DaysRequired)
}

// ComputeFreePlaces derives how many participants travel free from a
// "F:N" ratio policy (F free places per N paying participants):
// floor(pax / N) × F.
//
// A ratio that does not parse into two positive integers yields 0. The
// previous behaviour was to keep the stale value; resetting to zero makes
// the figure an honest function of the current inputs.
func ComputeFreePlaces(pax int, ratio string) int {
	f, n, ok := ParseFreePlaceRatio(ratio)
	if !ok || pax <= 0 {
		return 0
	}
	return (pax / n) * f
}

// ParseFreePlaceRatio splits a "F:N" string into its two positive integer
// components. ok is false for anything else.
func ParseFreePlaceRatio(ratio string) (free, per int, ok bool) {
	parts := strings.Split(strings.TrimSpace(ratio), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	free, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || free <= 0 {
		return 0, 0, false
	}
	per, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || per <= 0 {
		return 0, 0, false
	}
	return free, per, true
}

// ToHomeCurrency converts a foreign-currency amount to home currency,
// rounded to 2 decimal places for display. The rate itself is never rounded,
// so repeated conversions stay consistent.
func ToHomeCurrency(amount, rate float64) float64 {
	return math.Round(amount*rate*100) / 100
}

// ItemDraft carries the user-entered fields for a new non-fixed cost item.
type ItemDraft struct {
	Description      string
	Unit             string
	PricePerUnit     float64
	QuantityStudents int
	QuantityAdults   int
	DaysRequired     int
}

// AddItem appends a new removable cost item. The draft is rejected (no-op,
// returns false) when the description is blank or the combined student and
// adult quantity is not positive.
func (q *Quotation) AddItem(d ItemDraft) bool {
	if strings.TrimSpace(d.Description) == "" {
		return false
	}
	if d.QuantityStudents+d.QuantityAdults <= 0 {
		return false
	}
	item := CostItem{
		ID:               uuid.NewString(),
		Description:      strings.TrimSpace(d.Description),
		Unit:             d.Unit,
		PricePerUnit:     clampNonNegative(d.PricePerUnit),
		QuantityStudents: clampNonNegativeInt(d.QuantityStudents),
		QuantityAdults:   clampNonNegativeInt(d.QuantityAdults),
		DaysRequired:     atLeastOne(d.DaysRequired),
	}
	if item.Unit == "" {
		item.Unit = UnitPerPerson
	}
	item.Subtotal = ComputeSubtotal(item)
	q.CostItems = append(q.CostItems, item)
	q.Recompute()
	return true
}

// RemoveItem deletes a non-fixed item and recomputes totals. Fixed checklist
// items cannot be removed; the call is a no-op and returns false.
func (q *Quotation) RemoveItem(id string) bool {
	for i := range q.CostItems {
		if q.CostItems[i].ID != id {
			continue
		}
		if q.CostItems[i].Fixed {
			return false
		}
		q.CostItems = append(q.CostItems[:i], q.CostItems[i+1:]...)
		q.Recompute()
		return true
	}
	return false
}

// Item returns a pointer to the cost item with the given id, or nil.
func (q *Quotation) Item(id string) *CostItem {
	for i := range q.CostItems {
		if q.CostItems[i].ID == id {
			return &q.CostItems[i]
		}
	}
	return nil
}

// Editable cost item field names as used by the quote form.
const (
	FieldDescription      = "description"
	FieldPricePerUnit     = "price_per_unit"
	FieldUnit             = "unit"
	FieldQuantityStudents = "quantity_students"
	FieldQuantityAdults   = "quantity_adults"
	FieldDaysRequired     = "days_required"
	FieldSubtotal         = "subtotal"
)

// UpdateItem applies a single field edit to a cost item and recomputes the
// item subtotal and all aggregate totals. Numeric parse failures fall back
// to 0 (1 for days) so live editing never blocks on partial input.
//
// Editing the subtotal field is only meaningful on the overridable item,
// where it installs a manual override; changing any formula input on that
// item clears the override again.
func (q *Quotation) UpdateItem(id, field, raw string) bool {
	item := q.Item(id)
	if item == nil {
		return false
	}

	switch field {
	case FieldDescription:
		if !item.Fixed {
			item.Description = strings.TrimSpace(raw)
		}
	case FieldUnit:
		if !item.Fixed {
			item.Unit = raw
		}
	case FieldPricePerUnit:
		item.PricePerUnit = clampNonNegative(parseFloat(raw))
		item.ManualSubtotal = nil
	case FieldQuantityStudents:
		item.QuantityStudents = clampNonNegativeInt(parseInt(raw))
		item.ManualSubtotal = nil
	case FieldQuantityAdults:
		item.QuantityAdults = clampNonNegativeInt(parseInt(raw))
		item.ManualSubtotal = nil
	case FieldDaysRequired:
		item.DaysRequired = atLeastOne(parseInt(raw))
		item.ManualSubtotal = nil
	case FieldSubtotal:
		if !item.Overridable {
			return false
		}
		v := clampNonNegative(parseFloat(raw))
		item.ManualSubtotal = &v
	default:
		return false
	}

	item.Subtotal = ComputeSubtotal(*item)
	q.Recompute()
	return true
}

// SetDetails applies the trip-level inputs from the quote form and
// recomputes. All numeric values arrive as raw form strings; parse failures
// fall back to 0 so the form keeps rendering a numeric result.
func (q *Quotation) SetDetails(fields map[string]string) {
	if v, ok := fields["school_name"]; ok {
		q.SchoolName = strings.TrimSpace(v)
	}
	if v, ok := fields["party_leader"]; ok {
		q.PartyLeader = strings.TrimSpace(v)
	}
	if v, ok := fields["destination"]; ok {
		q.Destination = strings.TrimSpace(v)
	}
	if v, ok := fields["accommodation"]; ok {
		q.Accommodation = strings.TrimSpace(v)
	}
	if v, ok := fields["board"]; ok {
		q.Board = strings.TrimSpace(v)
	}
	if v, ok := fields["date_out"]; ok {
		q.DateOut = strings.TrimSpace(v)
	}
	if v, ok := fields["date_back"]; ok {
		q.DateBack = strings.TrimSpace(v)
	}
	if v, ok := fields["pax"]; ok {
		q.Pax = clampNonNegativeInt(parseInt(v))
	}
	if v, ok := fields["free_places"]; ok {
		q.FreePlaces = clampNonNegativeInt(parseInt(v))
	}
	if v, ok := fields["exchange_rate"]; ok {
		q.ExchangeRate = clampNonNegative(parseFloat(v))
	}
	if v, ok := fields["markup"]; ok {
		q.MarkupPercent = clampNonNegative(parseFloat(v))
	}
	if v, ok := fields["free_place_ratio"]; ok {
		q.FreePlaceRatio = strings.TrimSpace(v)
	}
	if v, ok := fields["euro_amount"]; ok {
		q.EuroAmount = clampNonNegative(parseFloat(v))
	}
	q.Recompute()
}

// Recompute derives every aggregate figure from the current inputs, in a
// fixed order: line subtotals feed the total cost, markup produces the net
// total and profit, then the per-head figures and the currency conversion.
// Division-by-zero cases produce explicit zero values rather than errors.
func (q *Quotation) Recompute() {
	var totalCost float64
	for i := range q.CostItems {
		q.CostItems[i].Subtotal = ComputeSubtotal(q.CostItems[i])
		totalCost += q.CostItems[i].Subtotal
	}

	netTotal := totalCost * (1 + q.MarkupPercent/100)
	profit := netTotal - totalCost

	freePlaces := ComputeFreePlaces(q.Pax, q.FreePlaceRatio)

	var pricePerPerson float64
	if q.Pax > 0 {
		pricePerPerson = netTotal / float64(q.Pax)
	}

	fullPayingPax := q.Pax - freePlaces
	var profitPerHead float64
	if fullPayingPax > 0 {
		profitPerHead = profit / float64(fullPayingPax)
	}

	q.Totals = QuoteTotals{
		TotalCost:            totalCost,
		NetTotal:             netTotal,
		Profit:               profit,
		PricePerPerson:       pricePerPerson,
		ProfitPerHead:        profitPerHead,
		CalculatedFreePlaces: freePlaces,
		FullPayingPax:        fullPayingPax,
		ConvertedAmount:      ToHomeCurrency(q.EuroAmount, q.ExchangeRate),
	}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampNonNegativeInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

package services

import (
	"math"
	"testing"
)

const tolerance = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestComputeSubtotal(t *testing.T) {
	manual := 4200.0

	tests := []struct {
		name string
		item CostItem
		want float64
	}{
		{
			name: "price times combined pax times days",
			item: CostItem{PricePerUnit: 150, QuantityStudents: 38, QuantityAdults: 2, DaysRequired: 1},
			want: 6000,
		},
		{
			name: "multi day item",
			item: CostItem{PricePerUnit: 12.5, QuantityStudents: 40, QuantityAdults: 4, DaysRequired: 3},
			want: 1650,
		},
		{
			name: "zero quantity yields zero",
			item: CostItem{PricePerUnit: 99, QuantityStudents: 0, QuantityAdults: 0, DaysRequired: 5},
			want: 0,
		},
		{
			name: "manual override wins on overridable item",
			item: CostItem{PricePerUnit: 30, QuantityStudents: 40, QuantityAdults: 4, DaysRequired: 4, Overridable: true, ManualSubtotal: &manual},
			want: 4200,
		},
		{
			name: "manual value ignored on non overridable item",
			item: CostItem{PricePerUnit: 30, QuantityStudents: 10, QuantityAdults: 0, DaysRequired: 1, ManualSubtotal: &manual},
			want: 300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSubtotal(tt.item)
			if !almostEqual(got, tt.want) {
				t.Errorf("ComputeSubtotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeFreePlaces(t *testing.T) {
	tests := []struct {
		name  string
		pax   int
		ratio string
		want  int
	}{
		{"exact multiple", 40, "1:10", 4},
		{"rounds down", 45, "1:10", 4},
		{"large group", 100, "1:10", 10},
		{"below threshold", 9, "1:10", 0},
		{"two free per fifteen", 45, "2:15", 6},
		{"zero pax", 0, "1:10", 0},
		{"malformed ratio", 40, "1-10", 0},
		{"empty ratio", 40, "", 0},
		{"zero divisor", 40, "1:0", 0},
		{"negative free part", 40, "-1:10", 0},
		{"non numeric", 40, "one:ten", 0},
		{"whitespace tolerated", 40, " 1 : 10 ", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFreePlaces(tt.pax, tt.ratio)
			if got != tt.want {
				t.Errorf("ComputeFreePlaces(%d, %q) = %d, want %d", tt.pax, tt.ratio, got, tt.want)
			}
		})
	}
}

func TestToHomeCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		want   float64
	}{
		{"standard conversion", 100, 0.85, 85},
		{"rounds to two decimals", 99.99, 0.85, 84.99},
		{"rounds half up", 10, 0.8555, 8.56},
		{"zero amount", 0, 0.85, 0},
		{"zero rate", 500, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHomeCurrency(tt.amount, tt.rate)
			if !almostEqual(got, tt.want) {
				t.Errorf("ToHomeCurrency(%v, %v) = %v, want %v", tt.amount, tt.rate, got, tt.want)
			}
		})
	}
}

func TestNewQuotationDefaults(t *testing.T) {
	q := NewQuotation()

	if q.ID == "" {
		t.Error("expected a generated id")
	}
	if !almostEqual(q.ExchangeRate, 0.85) {
		t.Errorf("default exchange rate = %v, want 0.85", q.ExchangeRate)
	}
	if q.FreePlaceRatio != "1:10" {
		t.Errorf("default free place ratio = %q, want 1:10", q.FreePlaceRatio)
	}
	if len(q.CostItems) != 23 {
		t.Fatalf("expected 23 checklist items, got %d", len(q.CostItems))
	}
	for _, item := range q.CostItems {
		if !item.Fixed {
			t.Errorf("checklist item %q should be fixed", item.Description)
		}
		if item.Subtotal != 0 {
			t.Errorf("fresh item %q has non-zero subtotal %v", item.Description, item.Subtotal)
		}
	}
	if q.Totals.TotalCost != 0 {
		t.Errorf("fresh quotation total cost = %v, want 0", q.Totals.TotalCost)
	}

	overridable := 0
	for _, item := range q.CostItems {
		if item.Overridable {
			overridable++
			if item.Description != "Accommodation" {
				t.Errorf("unexpected overridable item %q", item.Description)
			}
		}
	}
	if overridable != 1 {
		t.Errorf("expected exactly 1 overridable item, got %d", overridable)
	}
}

func TestFixedCostItemsAreIndependentCopies(t *testing.T) {
	a := FixedCostItems()
	b := FixedCostItems()

	a[0].PricePerUnit = 999
	if b[0].PricePerUnit == 999 {
		t.Error("FixedCostItems returned shared state between calls")
	}
}

func TestQuotationEndToEnd(t *testing.T) {
	q := NewQuotation()
	q.SetDetails(map[string]string{
		"school_name":      "St Mary's Academy",
		"pax":              "40",
		"markup":           "20",
		"free_place_ratio": "1:10",
	})

	flights := q.CostItems[0]
	if flights.Description != "Flights" {
		t.Fatalf("first checklist item = %q, want Flights", flights.Description)
	}
	q.UpdateItem(flights.ID, FieldPricePerUnit, "150")
	q.UpdateItem(flights.ID, FieldQuantityStudents, "38")
	q.UpdateItem(flights.ID, FieldQuantityAdults, "2")

	if !almostEqual(q.Totals.TotalCost, 6000) {
		t.Errorf("TotalCost = %v, want 6000", q.Totals.TotalCost)
	}
	if !almostEqual(q.Totals.NetTotal, 7200) {
		t.Errorf("NetTotal = %v, want 7200", q.Totals.NetTotal)
	}
	if !almostEqual(q.Totals.Profit, 1200) {
		t.Errorf("Profit = %v, want 1200", q.Totals.Profit)
	}
	if !almostEqual(q.Totals.PricePerPerson, 180) {
		t.Errorf("PricePerPerson = %v, want 180", q.Totals.PricePerPerson)
	}
	if q.Totals.CalculatedFreePlaces != 4 {
		t.Errorf("CalculatedFreePlaces = %d, want 4", q.Totals.CalculatedFreePlaces)
	}
	if q.Totals.FullPayingPax != 36 {
		t.Errorf("FullPayingPax = %d, want 36", q.Totals.FullPayingPax)
	}
	if !almostEqual(q.Totals.ProfitPerHead, 1200.0/36.0) {
		t.Errorf("ProfitPerHead = %v, want %v", q.Totals.ProfitPerHead, 1200.0/36.0)
	}
}

func TestRecomputeZeroGuards(t *testing.T) {
	q := NewQuotation()
	q.SetDetails(map[string]string{"pax": "0", "markup": "20"})
	q.UpdateItem(q.CostItems[0].ID, FieldPricePerUnit, "100")
	q.UpdateItem(q.CostItems[0].ID, FieldQuantityStudents, "10")

	if q.Totals.PricePerPerson != 0 {
		t.Errorf("PricePerPerson with zero pax = %v, want 0", q.Totals.PricePerPerson)
	}
	if q.Totals.ProfitPerHead != 0 {
		t.Errorf("ProfitPerHead with zero paying pax = %v, want 0", q.Totals.ProfitPerHead)
	}
}

func TestAddItemValidation(t *testing.T) {
	q := NewQuotation()
	before := len(q.CostItems)

	if q.AddItem(ItemDraft{Description: "  ", QuantityStudents: 10}) {
		t.Error("blank description should be rejected")
	}
	if q.AddItem(ItemDraft{Description: "Museum Entry", QuantityStudents: 0, QuantityAdults: 0}) {
		t.Error("zero combined quantity should be rejected")
	}
	if len(q.CostItems) != before {
		t.Fatalf("rejected drafts changed the item list")
	}

	if !q.AddItem(ItemDraft{Description: "Museum Entry", PricePerUnit: 8, QuantityStudents: 38, QuantityAdults: 2}) {
		t.Fatal("valid draft rejected")
	}
	added := q.CostItems[len(q.CostItems)-1]
	if added.Fixed {
		t.Error("added item must not be fixed")
	}
	if added.DaysRequired != 1 {
		t.Errorf("added item days = %d, want default 1", added.DaysRequired)
	}
	if added.Unit != UnitPerPerson {
		t.Errorf("added item unit = %q, want default %q", added.Unit, UnitPerPerson)
	}
	if !almostEqual(added.Subtotal, 320) {
		t.Errorf("added item subtotal = %v, want 320", added.Subtotal)
	}
	if !almostEqual(q.Totals.TotalCost, 320) {
		t.Errorf("TotalCost after add = %v, want 320", q.Totals.TotalCost)
	}
}

func TestRemoveItem(t *testing.T) {
	q := NewQuotation()
	q.AddItem(ItemDraft{Description: "Theme Park", PricePerUnit: 25, QuantityStudents: 40})
	custom := q.CostItems[len(q.CostItems)-1]

	if q.RemoveItem(q.CostItems[0].ID) {
		t.Error("fixed checklist item must not be removable")
	}
	if len(q.CostItems) != 24 {
		t.Fatalf("item count after refused removal = %d, want 24", len(q.CostItems))
	}

	if !q.RemoveItem(custom.ID) {
		t.Fatal("custom item removal failed")
	}
	if len(q.CostItems) != 23 {
		t.Errorf("item count after removal = %d, want 23", len(q.CostItems))
	}
	if q.Totals.TotalCost != 0 {
		t.Errorf("TotalCost after removal = %v, want 0", q.Totals.TotalCost)
	}

	if q.RemoveItem("no-such-id") {
		t.Error("unknown id should report failure")
	}
}

func TestUpdateItemSubtotalOverride(t *testing.T) {
	q := NewQuotation()

	var accommodation *CostItem
	for i := range q.CostItems {
		if q.CostItems[i].Overridable {
			accommodation = &q.CostItems[i]
			break
		}
	}
	if accommodation == nil {
		t.Fatal("no overridable checklist item found")
	}

	q.UpdateItem(accommodation.ID, FieldPricePerUnit, "30")
	q.UpdateItem(accommodation.ID, FieldQuantityStudents, "40")
	q.UpdateItem(accommodation.ID, FieldDaysRequired, "4")
	if !almostEqual(accommodation.Subtotal, 4800) {
		t.Fatalf("formula subtotal = %v, want 4800", accommodation.Subtotal)
	}

	// Manual override replaces the formula result.
	if !q.UpdateItem(accommodation.ID, FieldSubtotal, "4200") {
		t.Fatal("subtotal override rejected on overridable item")
	}
	if !almostEqual(accommodation.Subtotal, 4200) {
		t.Errorf("overridden subtotal = %v, want 4200", accommodation.Subtotal)
	}
	if !almostEqual(q.Totals.TotalCost, 4200) {
		t.Errorf("TotalCost with override = %v, want 4200", q.Totals.TotalCost)
	}

	// Editing a formula input clears the override.
	q.UpdateItem(accommodation.ID, FieldDaysRequired, "5")
	if accommodation.ManualSubtotal != nil {
		t.Error("formula edit should clear the manual override")
	}
	if !almostEqual(accommodation.Subtotal, 6000) {
		t.Errorf("subtotal after override cleared = %v, want 6000", accommodation.Subtotal)
	}

	// Non-overridable items refuse subtotal edits.
	if q.UpdateItem(q.CostItems[0].ID, FieldSubtotal, "999") {
		t.Error("subtotal edit accepted on non-overridable item")
	}
}

func TestUpdateItemFieldRules(t *testing.T) {
	q := NewQuotation()
	q.AddItem(ItemDraft{Description: "City Tour", PricePerUnit: 10, QuantityStudents: 20})
	custom := &q.CostItems[len(q.CostItems)-1]
	fixed := &q.CostItems[0]

	q.UpdateItem(fixed.ID, FieldDescription, "Renamed")
	if fixed.Description == "Renamed" {
		t.Error("fixed item description must not change")
	}

	q.UpdateItem(custom.ID, FieldDescription, " Walking Tour ")
	if custom.Description != "Walking Tour" {
		t.Errorf("custom description = %q, want trimmed rename", custom.Description)
	}

	q.UpdateItem(custom.ID, FieldUnit, UnitPerDay)
	if custom.Unit != UnitPerDay {
		t.Errorf("custom unit = %q, want %q", custom.Unit, UnitPerDay)
	}

	// Garbage numeric input falls back to zero, days to one.
	q.UpdateItem(custom.ID, FieldPricePerUnit, "abc")
	if custom.PricePerUnit != 0 {
		t.Errorf("price after bad input = %v, want 0", custom.PricePerUnit)
	}
	q.UpdateItem(custom.ID, FieldDaysRequired, "-3")
	if custom.DaysRequired != 1 {
		t.Errorf("days after negative input = %d, want 1", custom.DaysRequired)
	}

	if q.UpdateItem(custom.ID, "no_such_field", "x") {
		t.Error("unknown field should report failure")
	}
	if q.UpdateItem("missing", FieldUnit, UnitPerDay) {
		t.Error("unknown item should report failure")
	}
}

func TestSetDetailsParsing(t *testing.T) {
	q := NewQuotation()
	q.SetDetails(map[string]string{
		"school_name":   "  Hillcrest High  ",
		"party_leader":  "D. Gray",
		"destination":   "Barcelona",
		"accommodation": "Hotel Miramar",
		"board":         "Half Board",
		"date_out":      "2026-02-13",
		"date_back":     "2026-02-17",
		"pax":           "44",
		"exchange_rate": "0.9",
		"markup":        "abc",
		"euro_amount":   "250",
	})

	if q.SchoolName != "Hillcrest High" {
		t.Errorf("school name = %q, want trimmed value", q.SchoolName)
	}
	if q.Pax != 44 {
		t.Errorf("pax = %d, want 44", q.Pax)
	}
	if q.MarkupPercent != 0 {
		t.Errorf("unparseable markup = %v, want fallback 0", q.MarkupPercent)
	}
	if !almostEqual(q.Totals.ConvertedAmount, 225) {
		t.Errorf("converted amount = %v, want 225", q.Totals.ConvertedAmount)
	}

	// Negative numerics clamp to zero.
	q.SetDetails(map[string]string{"pax": "-5", "exchange_rate": "-1"})
	if q.Pax != 0 || q.ExchangeRate != 0 {
		t.Errorf("negative inputs not clamped: pax=%d rate=%v", q.Pax, q.ExchangeRate)
	}
}

func TestParseFreePlaceRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    string
		wantFree int
		wantPer  int
		wantOK   bool
	}{
		{"basic", "1:10", 1, 10, true},
		{"bigger parts", "3:25", 3, 25, true},
		{"spaced", " 2 : 15 ", 2, 15, true},
		{"missing colon", "110", 0, 0, false},
		{"extra colon", "1:10:2", 0, 0, false},
		{"zero free", "0:10", 0, 0, false},
		{"zero per", "1:0", 0, 0, false},
		{"empty", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free, per, ok := ParseFreePlaceRatio(tt.ratio)
			if free != tt.wantFree || per != tt.wantPer || ok != tt.wantOK {
				t.Errorf("ParseFreePlaceRatio(%q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.ratio, free, per, ok, tt.wantFree, tt.wantPer, tt.wantOK)
			}
		})
	}
}

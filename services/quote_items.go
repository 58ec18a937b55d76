package services

import "fmt"

// Pricing units for cost items. Informational only: the subtotal formula is
// identical whichever unit is selected.
const (
	UnitPerPerson       = "Per Person"
	UnitPerPersonPerDay = "Per Person Per Day"
	UnitPerCrossing     = "Per Crossing"
	UnitPerDay          = "Per Day"
	UnitPerGroup        = "Per Group"
	UnitSingle          = "Single Unit"
)

// fixedItemDefs is the standard 23-category tour cost checklist. Every
// quotation starts with these rows; they can be edited but not removed.
// Accommodation is the one item whose subtotal may be manually overridden.
var fixedItemDefs = []struct {
	description string
	unit        string
	overridable bool
}{
	{"Flights", UnitPerPerson, false},
	{"Coach Costs", UnitPerPerson, false},
	{"Train Cost Students", UnitPerPersonPerDay, false},
	{"Train Cost Adults", UnitPerPersonPerDay, false},
	{"UK Airport Transfers", UnitPerPersonPerDay, false},
	{"Ferry Per Crossing", UnitPerPersonPerDay, false},
	{"TOMS", UnitPerGroup, false},
	{"Insurance Students", UnitPerPerson, false},
	{"Insurance Adults", UnitPerPerson, false},
	{"Rep Flight", UnitPerPerson, false},
	{"Rep Wages", UnitPerPerson, false},
	{"Accommodation", UnitPerPerson, true},
	{"Breakfast", UnitPerPerson, false},
	{"Lunch", UnitPerPerson, false},
	{"Dinner", UnitPerPerson, false},
	{"Tourist Tax Student", UnitPerPerson, false},
	{"Tourist Tax Adult", UnitPerPerson, false},
	{"Local Coach", UnitPerPerson, false},
	{"Public Transport", UnitPerPerson, false},
	{"Airport Transfer", UnitPerPerson, false},
	{"Rep Accommodation", UnitPerPerson, false},
	{"UK Driver Accommodation", UnitPerPerson, false},
	{"Local Guide", UnitPerPerson, false},
}

// FixedCostItems returns a fresh copy of the standard checklist at zero
// prices and quantities, days defaulted to 1. IDs are stable across
// quotations so form rows can address them.
func FixedCostItems() []CostItem {
	items := make([]CostItem, len(fixedItemDefs))
	for i, def := range fixedItemDefs {
		items[i] = CostItem{
			ID:           fmt.Sprintf("fixed-%d", i+1),
			Description:  def.description,
			Unit:         def.unit,
			DaysRequired: 1,
			Fixed:        true,
			Overridable:  def.overridable,
		}
	}
	return items
}

package services

// UnitOptions is the list of pricing unit options for cost items.
var UnitOptions = []string{
	UnitPerPerson,
	UnitPerPersonPerDay,
	UnitPerCrossing,
	UnitPerDay,
	UnitPerGroup,
	UnitSingle,
}

// BoardOptions is the list of accommodation board types.
var BoardOptions = []string{
	"Room Only",
	"Bed & Breakfast",
	"Half Board",
	"Full Board",
	"All Inclusive",
}

// BookingStatuses is the ordered list of booking pipeline statuses.
var BookingStatuses = []string{
	"enquiry",
	"quoted",
	"quote_follow_up",
	"quote_lost",
	"confirmed",
	"paid",
	"completed",
	"cancelled",
}

// BookingStatusLabels maps booking statuses to their display labels.
// "confirmed" and "paid" carry business labels that differ from the raw value.
var BookingStatusLabels = map[string]string{
	"enquiry":         "Enquiry",
	"quoted":          "Quoted",
	"quote_follow_up": "Quote Follow Up",
	"quote_lost":      "Quote Lost",
	"confirmed":       "Provisional",
	"paid":            "Booked",
	"completed":       "Completed",
	"cancelled":       "Cancelled",
}

// ProviderStatuses is the list of excursion provider contact statuses.
var ProviderStatuses = []string{
	"not_contacted",
	"contacted",
	"booked",
	"paid",
}

// ProviderStatusLabels maps provider statuses to display labels.
var ProviderStatusLabels = map[string]string{
	"not_contacted": "Not Contacted",
	"contacted":     "Contacted",
	"booked":        "Booked",
	"paid":          "Paid",
}

// ActivityTypes is the list of booking activity log entry types.
var ActivityTypes = []string{
	"note",
	"email",
	"call",
	"meeting",
	"quote_sent",
	"payment_received",
}

// ActivityTypeLabels maps activity types to display labels.
var ActivityTypeLabels = map[string]string{
	"note":             "Note",
	"email":            "Email",
	"call":             "Call",
	"meeting":          "Meeting",
	"quote_sent":       "Quote Sent",
	"payment_received": "Payment Received",
}

// SupplierCategories is the list of supplier categories used for filtering.
var SupplierCategories = []string{
	"Attraction",
	"Accommodation",
	"Transport",
	"Restaurant",
	"Guide",
	"Insurance",
	"Other",
}

// BookingStatusLabel returns the display label for a status, falling back
// to the raw value for anything unknown.
func BookingStatusLabel(status string) string {
	if label, ok := BookingStatusLabels[status]; ok {
		return label
	}
	return status
}

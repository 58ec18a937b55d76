package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type schoolDef struct {
	name          string
	address       string
	city          string
	postcode      string
	phone         string
	email         string
	website       string
	contactPerson string
	notes         string
}

type tripDef struct {
	title           string
	destination     string
	description     string
	durationDays    int
	basePrice       float64
	maxParticipants int
	startDate       string
	endDate         string
	itinerary       string
}

type supplierDef struct {
	name          string
	category      string
	contactPerson string
	email         string
	phone         string
	city          string
	focus         string
	approxPrice   string
	notes         string
}

type excursionDef struct {
	tripIndex     int
	supplierIndex int // -1 when no supplier
	name          string
	description   string
	price         float64
	durationHours float64
}

type bookingDef struct {
	schoolIndex         int
	tripIndex           int
	status              string
	participantCount    int
	totalPrice          float64
	specialRequirements string
	contactEmail        string
	contactPhone        string
	notes               string
}

type activityDef struct {
	bookingIndex int
	activityType string
	description  string
}

// Seed populates the collections with a realistic set of schools, trips,
// suppliers, excursions and bookings. It is safe to call on every startup
// because it returns early if any school records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if schools already exist ───────────────────
	schoolsCol, err := app.FindCollectionByNameOrId("schools")
	if err != nil {
		return fmt.Errorf("seed: could not find schools collection: %w", err)
	}
	existing, err := app.FindAllRecords(schoolsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query schools: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: schools collection is empty – inserting seed data …")

	tripsCol, err := app.FindCollectionByNameOrId("trips")
	if err != nil {
		return fmt.Errorf("seed: could not find trips collection: %w", err)
	}
	suppliersCol, err := app.FindCollectionByNameOrId("suppliers")
	if err != nil {
		return fmt.Errorf("seed: could not find suppliers collection: %w", err)
	}
	excursionsCol, err := app.FindCollectionByNameOrId("excursions")
	if err != nil {
		return fmt.Errorf("seed: could not find excursions collection: %w", err)
	}
	bookingsCol, err := app.FindCollectionByNameOrId("bookings")
	if err != nil {
		return fmt.Errorf("seed: could not find bookings collection: %w", err)
	}
	bookingExcursionsCol, err := app.FindCollectionByNameOrId("booking_excursions")
	if err != nil {
		return fmt.Errorf("seed: could not find booking_excursions collection: %w", err)
	}
	activitiesCol, err := app.FindCollectionByNameOrId("activities")
	if err != nil {
		return fmt.Errorf("seed: could not find activities collection: %w", err)
	}

	schools := []schoolDef{
		{
			name: "Westminster Academy", address: "123 Education Street", city: "London",
			postcode: "SW1A 1AA", phone: "020 7946 0958", email: "admin@westminster-academy.co.uk",
			website: "https://westminster-academy.co.uk", contactPerson: "Sarah Johnson",
			notes: "Very active in educational tours, prefer cultural experiences",
		},
		{
			name: "Oakwood High School", address: "456 School Lane", city: "Manchester",
			postcode: "M1 1AA", phone: "0161 123 4567", email: "info@oakwood-high.co.uk",
			contactPerson: "David Smith",
			notes:         "Budget conscious, interested in STEM-focused trips",
		},
		{
			name: "Riverside College", address: "789 River Road", city: "Cambridge",
			postcode: "CB1 1AA", phone: "01223 123456", email: "trips@riverside-college.ac.uk",
			contactPerson: "Emma Wilson",
			notes:         "Premium school, interested in exclusive experiences",
		},
	}

	trips := []tripDef{
		{
			title: "Historical Paris Discovery", destination: "Paris, France",
			description:  "Explore the rich history of Paris with visits to major landmarks and museums",
			durationDays: 4, basePrice: 450, maxParticipants: 40,
			startDate: "2026-04-15", endDate: "2026-04-18",
			itinerary: "Day 1: Arrival and Eiffel Tower\nDay 2: Louvre Museum and Notre-Dame\nDay 3: Versailles Palace\nDay 4: Departure",
		},
		{
			title: "Science & Innovation Berlin", destination: "Berlin, Germany",
			description:  "STEM-focused educational tour exploring science and technology",
			durationDays: 5, basePrice: 520, maxParticipants: 35,
			startDate: "2026-05-20", endDate: "2026-05-24",
			itinerary: "Day 1: Arrival and city orientation\nDay 2: Science Museum and Planetarium\nDay 3: Technology centers\nDay 4: Historical sites\nDay 5: Departure",
		},
		{
			title: "Roman Heritage Rome", destination: "Rome, Italy",
			description:  "Ancient history comes alive in the Eternal City",
			durationDays: 6, basePrice: 680, maxParticipants: 30,
			startDate: "2026-06-10", endDate: "2026-06-15",
			itinerary: "Day 1: Arrival\nDay 2: Colosseum and Roman Forum\nDay 3: Vatican City\nDay 4: Pompeii day trip\nDay 5: Local culture\nDay 6: Departure",
		},
	}

	suppliers := []supplierDef{
		{
			name: "Louvre Education Services", category: "Attraction", contactPerson: "Claire Dubois",
			email: "groups@louvre-edu.example.fr", phone: "+33 1 40 20 50 50", city: "Paris",
			focus: "Art and history workshops", approxPrice: "€12 per student",
			notes: "Book at least 6 weeks ahead for guided workshops",
		},
		{
			name: "Berlin Science Centre", category: "Attraction", contactPerson: "Jonas Weber",
			email: "bookings@bsc.example.de", phone: "+49 30 902540", city: "Berlin",
			focus: "Interactive STEM exhibits", approxPrice: "€9 per student",
			notes: "Free teacher places at 1:10",
		},
		{
			name: "Roma Coach Partners", category: "Transport", contactPerson: "Marco Bellini",
			email: "ops@romacoach.example.it", phone: "+39 06 4890", city: "Rome",
			focus: "Full-day coach hire with licensed guides", approxPrice: "€450 per day",
			notes: "Includes city permits and driver accommodation",
		},
	}

	excursions := []excursionDef{
		{tripIndex: 0, supplierIndex: 0, name: "Louvre Guided Workshop", description: "Curator-led tour with sketching workshop", price: 12, durationHours: 3},
		{tripIndex: 0, supplierIndex: -1, name: "Seine River Cruise", description: "Evening cruise with commentary", price: 9.5, durationHours: 1.5},
		{tripIndex: 1, supplierIndex: 1, name: "Science Centre Day", description: "Full day of interactive exhibits and planetarium show", price: 9, durationHours: 6},
		{tripIndex: 2, supplierIndex: 2, name: "Pompeii Day Trip", description: "Coach to Pompeii with licensed site guide", price: 28, durationHours: 9},
	}

	bookings := []bookingDef{
		{
			schoolIndex: 0, tripIndex: 0, status: "confirmed", participantCount: 25, totalPrice: 11250,
			specialRequirements: "Two vegetarian meals required",
			contactEmail:        "sarah.johnson@westminster-academy.co.uk", contactPhone: "020 7946 0958",
			notes: "Group leader very experienced with international travel",
		},
		{
			schoolIndex: 1, tripIndex: 1, status: "quoted", participantCount: 20, totalPrice: 10400,
			specialRequirements: "One wheelchair accessible room needed",
			contactEmail:        "david.smith@oakwood-high.co.uk", contactPhone: "0161 123 4567",
			notes: "Waiting for final approval from school board",
		},
		{
			schoolIndex: 2, tripIndex: 2, status: "enquiry", participantCount: 15, totalPrice: 10200,
			contactEmail: "emma.wilson@riverside-college.ac.uk", contactPhone: "01223 123456",
			notes: "Initial enquiry, very interested in premium options",
		},
	}

	activities := []activityDef{
		{bookingIndex: 0, activityType: "payment_received", description: "Deposit of £2,250 received"},
		{bookingIndex: 1, activityType: "quote_sent", description: "Quotation emailed to David Smith"},
		{bookingIndex: 1, activityType: "call", description: "Follow-up call, board meets next Tuesday"},
		{bookingIndex: 2, activityType: "note", description: "Asked about private Vatican tour upgrade"},
	}

	schoolIDs := make([]string, len(schools))
	for i, s := range schools {
		r := core.NewRecord(schoolsCol)
		r.Set("name", s.name)
		r.Set("address", s.address)
		r.Set("city", s.city)
		r.Set("postcode", s.postcode)
		r.Set("phone", s.phone)
		r.Set("email", s.email)
		if s.website != "" {
			r.Set("website", s.website)
		}
		r.Set("contact_person", s.contactPerson)
		r.Set("notes", s.notes)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save school %q: %w", s.name, err)
		}
		schoolIDs[i] = r.Id
	}

	tripIDs := make([]string, len(trips))
	for i, tr := range trips {
		r := core.NewRecord(tripsCol)
		r.Set("title", tr.title)
		r.Set("destination", tr.destination)
		r.Set("description", tr.description)
		r.Set("duration_days", tr.durationDays)
		r.Set("base_price", tr.basePrice)
		r.Set("max_participants", tr.maxParticipants)
		r.Set("start_date", tr.startDate)
		r.Set("end_date", tr.endDate)
		r.Set("itinerary", tr.itinerary)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save trip %q: %w", tr.title, err)
		}
		tripIDs[i] = r.Id
	}

	supplierIDs := make([]string, len(suppliers))
	for i, s := range suppliers {
		r := core.NewRecord(suppliersCol)
		r.Set("name", s.name)
		r.Set("category", s.category)
		r.Set("contact_person", s.contactPerson)
		r.Set("email", s.email)
		r.Set("phone", s.phone)
		r.Set("city", s.city)
		r.Set("focus", s.focus)
		r.Set("approx_price", s.approxPrice)
		r.Set("notes", s.notes)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save supplier %q: %w", s.name, err)
		}
		supplierIDs[i] = r.Id
	}

	excursionIDs := make([]string, len(excursions))
	for i, e := range excursions {
		r := core.NewRecord(excursionsCol)
		r.Set("trip", tripIDs[e.tripIndex])
		if e.supplierIndex >= 0 {
			r.Set("supplier", supplierIDs[e.supplierIndex])
		}
		r.Set("name", e.name)
		r.Set("description", e.description)
		r.Set("price", e.price)
		r.Set("duration_hours", e.durationHours)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save excursion %q: %w", e.name, err)
		}
		excursionIDs[i] = r.Id
	}

	bookingIDs := make([]string, len(bookings))
	for i, b := range bookings {
		r := core.NewRecord(bookingsCol)
		r.Set("school", schoolIDs[b.schoolIndex])
		r.Set("trip", tripIDs[b.tripIndex])
		r.Set("status", b.status)
		r.Set("participant_count", b.participantCount)
		r.Set("total_price", b.totalPrice)
		r.Set("special_requirements", b.specialRequirements)
		r.Set("contact_email", b.contactEmail)
		r.Set("contact_phone", b.contactPhone)
		r.Set("notes", b.notes)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save booking %d: %w", i, err)
		}
		bookingIDs[i] = r.Id
	}

	// Attach the Louvre workshop to the confirmed Paris booking.
	be := core.NewRecord(bookingExcursionsCol)
	be.Set("booking", bookingIDs[0])
	be.Set("excursion", excursionIDs[0])
	be.Set("participant_count", 25)
	be.Set("total_price", 300)
	be.Set("provider_status", "booked")
	be.Set("provider_notes", "Confirmed for morning slot")
	be.Set("provider_contact_date", "2026-02-02")
	if err := app.Save(be); err != nil {
		return fmt.Errorf("seed: save booking excursion: %w", err)
	}

	for i, a := range activities {
		r := core.NewRecord(activitiesCol)
		r.Set("booking", bookingIDs[a.bookingIndex])
		r.Set("type", a.activityType)
		r.Set("description", a.description)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save activity %d: %w", i, err)
		}
	}

	log.Printf("seed: inserted %d schools, %d trips, %d suppliers, %d excursions, %d bookings",
		len(schools), len(trips), len(suppliers), len(excursions), len(bookings))
	return nil
}

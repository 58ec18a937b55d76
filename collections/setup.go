package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the schools, suppliers, trips,
// excursions, bookings, booking_excursions and activities collections exist.
func Setup(app *pocketbase.PocketBase) {
	schools := ensureCollection(app, "schools", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "city", Required: false})
		c.Fields.Add(&core.TextField{Name: "postcode", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "website", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_person", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	suppliers := ensureCollection(app, "suppliers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_person", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "city", Required: false})
		c.Fields.Add(&core.TextField{Name: "postcode", Required: false})
		c.Fields.Add(&core.TextField{Name: "website", Required: false})
		c.Fields.Add(&core.TextField{Name: "specialties", Required: false})
		c.Fields.Add(&core.TextField{Name: "focus", Required: false})
		c.Fields.Add(&core.TextField{Name: "approx_price", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes_for_groups", Required: false})
		c.Fields.Add(&core.TextField{Name: "travel_time", Required: false})
		c.Fields.Add(&core.TextField{Name: "transport_mode", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	trips := ensureCollection(app, "trips", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.TextField{Name: "destination", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "duration_days", Required: false})
		c.Fields.Add(&core.NumberField{Name: "base_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "max_participants", Required: false})
		c.Fields.Add(&core.TextField{Name: "start_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "end_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "itinerary", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	excursions := ensureCollection(app, "excursions", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "trip",
			Required:      true,
			CollectionId:  trips.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "supplier",
			Required:     false,
			CollectionId: suppliers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "duration_hours", Required: false})
		c.Fields.Add(&core.NumberField{Name: "max_participants", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	bookings := ensureCollection(app, "bookings", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "school",
			Required:      true,
			CollectionId:  schools.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "trip",
			Required:      true,
			CollectionId:  trips.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"enquiry", "quoted", "quote_follow_up", "quote_lost", "confirmed", "paid", "completed", "cancelled"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "participant_count", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_price", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_email", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "special_requirements", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "booking_excursions", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "booking",
			Required:      true,
			CollectionId:  bookings.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "excursion",
			Required:      true,
			CollectionId:  excursions.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "participant_count", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_price", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "provider_status",
			Required:  true,
			Values:    []string{"not_contacted", "contacted", "booked", "paid"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "provider_notes", Required: false})
		c.Fields.Add(&core.TextField{Name: "provider_contact_date", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "activities", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "booking",
			Required:      true,
			CollectionId:  bookings.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  true,
			Values:    []string{"note", "email", "call", "meeting", "quote_sent", "payment_received"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}

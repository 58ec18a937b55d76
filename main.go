package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"tourcrm/collections"
	"tourcrm/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	quotes := handlers.NewQuoteStore()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Header and sidebar data for every page render
		se.Router.BindFunc(handlers.LayoutMiddleware(app))

		// ── Dashboard ────────────────────────────────────────────
		se.Router.GET("/", handlers.HandleDashboard(app))

		// ── Quotation engine ─────────────────────────────────────
		se.Router.GET("/quotes", handlers.HandleQuoteList(quotes))
		se.Router.GET("/quotes/new", handlers.HandleQuoteNew(quotes))
		se.Router.GET("/quotes/{id}/export/json", handlers.HandleQuoteExportJSON(quotes))
		se.Router.GET("/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(quotes))
		se.Router.GET("/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(quotes))
		se.Router.GET("/quotes/{id}", handlers.HandleQuoteView(quotes))
		se.Router.DELETE("/quotes/{id}", handlers.HandleQuoteDiscard(quotes))
		se.Router.POST("/quotes/{id}/details", handlers.HandleQuoteDetails(quotes))
		se.Router.POST("/quotes/{id}/items", handlers.HandleQuoteItemAdd(quotes))
		se.Router.PATCH("/quotes/{id}/items/{itemId}", handlers.HandleQuoteItemUpdate(quotes))
		se.Router.DELETE("/quotes/{id}/items/{itemId}", handlers.HandleQuoteItemDelete(quotes))

		// ── Schools ──────────────────────────────────────────────
		se.Router.GET("/schools/import/template", handlers.HandleSchoolTemplateDownload(app))
		se.Router.GET("/schools/import", handlers.HandleSchoolImportPage(app))
		se.Router.POST("/schools/import", handlers.HandleSchoolValidate(app))
		se.Router.POST("/schools/import/commit", handlers.HandleSchoolImportCommit(app))
		se.Router.POST("/schools/import/errors", handlers.HandleSchoolErrorReport(app))
		se.Router.GET("/schools", handlers.HandleSchoolList(app))
		se.Router.GET("/schools/create", handlers.HandleSchoolCreate(app))
		se.Router.POST("/schools", handlers.HandleSchoolSave(app))
		se.Router.GET("/schools/{id}/edit", handlers.HandleSchoolEdit(app))
		se.Router.POST("/schools/{id}/save", handlers.HandleSchoolUpdate(app))
		se.Router.DELETE("/schools/{id}", handlers.HandleSchoolDelete(app))

		// ── Trips and excursions ─────────────────────────────────
		se.Router.GET("/trips", handlers.HandleTripList(app))
		se.Router.GET("/trips/create", handlers.HandleTripCreate(app))
		se.Router.POST("/trips", handlers.HandleTripSave(app))
		se.Router.GET("/trips/{id}/edit", handlers.HandleTripEdit(app))
		se.Router.POST("/trips/{id}/save", handlers.HandleTripUpdate(app))
		se.Router.DELETE("/trips/{id}", handlers.HandleTripDelete(app))
		se.Router.GET("/trips/{id}/excursions/create", handlers.HandleExcursionCreate(app))
		se.Router.POST("/trips/{id}/excursions", handlers.HandleExcursionSave(app))
		se.Router.GET("/excursions/{id}/edit", handlers.HandleExcursionEdit(app))
		se.Router.POST("/excursions/{id}/save", handlers.HandleExcursionUpdate(app))
		se.Router.DELETE("/excursions/{id}", handlers.HandleExcursionDelete(app))

		// ── Suppliers ────────────────────────────────────────────
		se.Router.GET("/suppliers", handlers.HandleSupplierList(app))
		se.Router.GET("/suppliers/create", handlers.HandleSupplierCreate(app))
		se.Router.POST("/suppliers", handlers.HandleSupplierSave(app))
		se.Router.GET("/suppliers/{id}/edit", handlers.HandleSupplierEdit(app))
		se.Router.POST("/suppliers/{id}/save", handlers.HandleSupplierUpdate(app))
		se.Router.DELETE("/suppliers/{id}", handlers.HandleSupplierDelete(app))

		// ── Bookings ─────────────────────────────────────────────
		se.Router.GET("/bookings", handlers.HandleBookingList(app))
		se.Router.GET("/bookings/create", handlers.HandleBookingCreate(app))
		se.Router.POST("/bookings", handlers.HandleBookingSave(app))
		se.Router.GET("/bookings/{id}/edit", handlers.HandleBookingEdit(app))
		se.Router.POST("/bookings/{id}/save", handlers.HandleBookingUpdate(app))
		se.Router.DELETE("/bookings/{id}", handlers.HandleBookingDelete(app))
		se.Router.GET("/bookings/{id}", handlers.HandleBookingView(app))
		se.Router.POST("/bookings/{id}/activities", handlers.HandleBookingActivityAdd(app))
		se.Router.PATCH("/bookings/{id}/excursions/{excursionId}/status", handlers.HandleBookingExcursionStatus(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

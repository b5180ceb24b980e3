package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteforge/collections"
	"quoteforge/handlers"
	"quoteforge/services"
)

func main() {
	app := pocketbase.New()

	catalog, err := services.DefaultCatalog()
	if err != nil {
		log.Fatalf("invalid built-in catalog: %v", err)
	}

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)

		stateStore := services.NewRecordStateStore(app, services.StateNamespace)
		store, err := services.NewQuoteStore(stateStore)
		if err != nil {
			return err
		}

		// One quote identity per server session, embedded in exports and
		// submissions.
		quoteID := services.NewQuoteID()

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/catalog", handlers.HandleCatalogList(catalog))

		// ── Quote state ──────────────────────────────────────────
		se.Router.GET("/quote", handlers.HandleQuoteView(store))
		se.Router.POST("/quote/items", handlers.HandleQuoteAddItem(catalog, store))
		se.Router.DELETE("/quote/items/{id}", handlers.HandleQuoteRemoveItem(store))
		se.Router.PATCH("/quote/items/{id}/quantity", handlers.HandleQuoteUpdateQuantity(store))
		se.Router.PATCH("/quote/items/{id}/price", handlers.HandleQuoteUpdateItemPrice(store))
		se.Router.POST("/quote/discount", handlers.HandleQuoteSetDiscount(store))
		se.Router.POST("/quote/tax", handlers.HandleQuoteSetTax(store))
		se.Router.POST("/quote/notes", handlers.HandleQuoteSetNotes(store))
		se.Router.POST("/quote/currency", handlers.HandleQuoteSetCurrency(store))

		// ── Export & submission ──────────────────────────────────
		se.Router.GET("/quote/export/pdf", handlers.HandleQuoteExportPDF(store, quoteID))
		se.Router.GET("/quote/export/excel", handlers.HandleQuoteExportExcel(store, quoteID))
		se.Router.GET("/quote/preview", handlers.HandleQuotePreview(store, quoteID))
		se.Router.POST("/quote/submit", handlers.HandleQuoteSubmit(app, store, quoteID))

		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quote/preview")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quoteforge/services"
)

// HandleCatalogList handles GET /catalog
// Lists the service offerings, optionally filtered by ?category= and a
// case-insensitive name search ?q=.
func HandleCatalogList(catalog *services.Catalog) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query()
		category := services.Category(query.Get("category"))
		search := query.Get("q")

		offerings := catalog.Filter(category, search)
		if offerings == nil {
			offerings = []services.Offering{}
		}

		return e.JSON(http.StatusOK, map[string]any{
			"offerings":  offerings,
			"categories": services.Categories,
		})
	}
}

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"quoteforge/services"
)

// HandleQuoteView handles GET /quote
// Returns the current selection and its derived totals.
func HandleQuoteView(store *services.QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return respondSnapshot(e, http.StatusOK, store.Snapshot())
	}
}

// HandleQuoteAddItem handles POST /quote/items
// Adds the offering identified by the offering_id form value. Adding an
// already selected offering leaves the quote unchanged.
func HandleQuoteAddItem(catalog *services.Catalog, store *services.QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		id := strings.TrimSpace(e.Request.FormValue("offering_id"))
		if id == "" {
			return apiError(e, http.StatusBadRequest, "offering_id is required")
		}

		offering, ok := catalog.Get(id)
		if !ok {
			return apiError(e, http.StatusNotFound, "Offering not found")
		}

		return respondSnapshot(e, http.StatusOK, store.AddItem(offering))
	}
}

// HandleQuoteRemoveItem handles DELETE /quote/items/{id}
// Removing an absent line is a no-op, not an error.
func HandleQuoteRemoveItem(store *services.QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing item ID")
		}
		return respondSnapshot(e, http.StatusOK, store.RemoveItem(id))
	}
}

// HandleQuoteUpdateQuantity handles PATCH /quote/items/{id}/quantity
// Applies the signed delta form value; quantity never drops below 1.
func HandleQuoteUpdateQuantity(store *services.QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing item ID")
		}

		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		delta, err := strconv.Atoi(strings.TrimSpace(e.Request.FormValue("delta")))
		if err != nil {
			return apiError(e, http.StatusBadRequest, "delta must be an integer")
		}

		return respondSnapshot(e, http.StatusOK, store.UpdateQuantity(id, delta))
	}
}

// HandleQuoteUpdateItemPrice handles PATCH /quote/items/{id}/price
// Overrides the line's unit price with the price form value. The engine
// accepts any numeric value here, including zero and negatives.
func HandleQuoteUpdateItemPrice(store *services.QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing item ID")
		}

		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(e.Request.FormValue("price")), 64)
		if err != nil {
			return apiError(e, http.StatusBadRequest, "price must be a number")
		}

		return respondSnapshot(e, http.StatusOK, store.UpdateItemPrice(id, price))
	}
}

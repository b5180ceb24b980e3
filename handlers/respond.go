// Package handlers exposes the quote-builder over HTTP: catalog browsing,
// quote mutations, document export and submission.
package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"quoteforge/services"
)

// apiError responds with a machine-readable error payload.
func apiError(e *core.RequestEvent, statusCode int, message string) error {
	return e.JSON(statusCode, map[string]string{"error": message})
}

// respondSnapshot responds with the current state and derived totals. Every
// mutation endpoint returns this so clients always see fresh aggregates.
func respondSnapshot(e *core.RequestEvent, statusCode int, snap services.QuoteSnapshot) error {
	return e.JSON(statusCode, snap)
}

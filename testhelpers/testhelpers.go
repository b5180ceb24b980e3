// Package testhelpers provides utilities for testing PocketBase-based
// applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"

	"quoteforge/collections"
	"quoteforge/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// NewTestQuoteStore creates a quote store backed by an in-memory state
// store, starting from defaults.
func NewTestQuoteStore(t *testing.T) *services.QuoteStore {
	t.Helper()

	store, err := services.NewQuoteStore(&services.MemoryStateStore{})
	if err != nil {
		t.Fatalf("failed to create quote store: %v", err)
	}
	return store
}

// TestCatalog builds the default catalog, failing the test on error.
func TestCatalog(t *testing.T) *services.Catalog {
	t.Helper()

	catalog, err := services.DefaultCatalog()
	if err != nil {
		t.Fatalf("failed to build default catalog: %v", err)
	}
	return catalog
}

// Offering returns a throwaway offering for store tests.
func Offering(id, name string, price float64, days int) services.Offering {
	return services.Offering{
		ID:            id,
		Name:          name,
		Price:         price,
		Category:      services.CategoryDevelopment,
		EstimatedDays: days,
	}
}

package services

import (
	"math"
	"testing"

	"github.com/pocketbase/pocketbase"

	"quoteforge/collections"
)

// floatClose reports whether two floats are equal within a small epsilon.
func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 0.0001
}

// newTestApp creates a bootstrapped PocketBase instance in a temp dir with
// all collections set up. Duplicated from testhelpers to avoid an import
// cycle (testhelpers imports services).
func newTestApp(t *testing.T) *pocketbase.PocketBase {
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

// testOffering builds a minimal valid offering for engine tests.
func testOffering(id string, price float64, days int) Offering {
	return Offering{
		ID:            id,
		Name:          "Offering " + id,
		Price:         price,
		Category:      CategoryDevelopment,
		EstimatedDays: days,
	}
}

// newStore builds a quote store on an in-memory state store.
func newStore(t *testing.T) *QuoteStore {
	t.Helper()

	store, err := NewQuoteStore(&MemoryStateStore{})
	if err != nil {
		t.Fatalf("NewQuoteStore() error = %v", err)
	}
	return store
}

// Package collections creates the PocketBase collections backing the
// quote-builder: the durable quote state cache and the submission log.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the quote_states and
// quote_submissions collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "quote_states", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "namespace", Required: true})
		c.Fields.Add(&core.JSONField{Name: "state"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quote_submissions", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quote_id", Required: true})
		c.Fields.Add(&core.JSONField{Name: "payload"})
		c.Fields.Add(&core.AutodateField{Name: "submitted", OnCreate: true})
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

package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the rate_presets collection exists.
// Calculations themselves are never stored.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "rate_presets", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.BoolField{Name: "is_default"})
		c.Fields.Add(&core.NumberField{Name: "hourly_rate", Min: floatPtr(0)})
		c.Fields.Add(&core.NumberField{Name: "rate_per_length", Min: floatPtr(0)})
		c.Fields.Add(&core.NumberField{Name: "transport_cost", Min: floatPtr(0)})
		c.Fields.Add(&core.NumberField{Name: "meal_cost", Min: floatPtr(0)})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_rate_presets_name", true, "name", "")
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

func floatPtr(v float64) *float64 {
	return &v
}

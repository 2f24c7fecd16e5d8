package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the vendors, quotations, items,
// memo_presets and system_config collections exist.
func Setup(app *pocketbase.PocketBase) {
	vendors := ensureCollection(app, "vendors", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "tax_id", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact", Required: false})
		c.Fields.Add(&core.TextField{Name: "website", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.FileField{
			Name:      "stamp",
			MaxSelect: 1,
			MaxSize:   5242880,
			MimeTypes: []string{"image/png", "image/jpeg", "image/webp"},
		})
		c.Fields.Add(&core.NumberField{Name: "stamp_scale", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quo_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_contact", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "project_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "project_location", Required: false})
		c.Fields.Add(&core.DateField{Name: "date", Required: false})
		c.Fields.Add(&core.JSONField{Name: "items", MaxSize: 2000000})
		c.Fields.Add(&core.EditorField{Name: "memo_html", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:         "vendor",
			Required:     false,
			CollectionId: vendors.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "total", Required: false})
		c.Fields.Add(&core.NumberField{Name: "manual_subtotal", Required: false})
		c.Fields.Add(&core.NumberField{Name: "manual_total", Required: false})
		c.Fields.Add(&core.FileField{
			Name:      "images",
			MaxSelect: 20,
			MaxSize:   10485760,
			MimeTypes: []string{"image/png", "image/jpeg", "image/webp"},
		})
		c.Fields.Add(&core.FileField{
			Name:      "signature_client",
			MaxSelect: 1,
			MaxSize:   5242880,
			MimeTypes: []string{"image/png", "image/jpeg"},
		})
		c.Fields.Add(&core.TextField{Name: "signed_at", Required: false})
		c.Fields.Add(&core.TextField{Name: "last_updated", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "items", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "unit", Required: false})
		c.Fields.Add(&core.NumberField{Name: "default_price", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "memo_presets", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "content", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "system_config", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "key", Required: true})
		c.Fields.Add(&core.TextField{Name: "value", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
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

package collections_test

import (
	"testing"

	"roadquote/collections"
	"roadquote/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"vendors",
	"quotations",
	"items",
	"memo_presets",
	"system_config",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	// Collect IDs from first run
	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	// Run Setup() again
	collections.Setup(app)

	// IDs should not change
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_QuotationsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("quotations")

	fields := []string{
		"quo_number", "customer_name", "customer_contact", "customer_phone",
		"project_name", "project_location", "date", "items", "memo_html",
		"vendor", "total", "manual_subtotal", "manual_total",
		"images", "signature_client", "signed_at", "last_updated",
		"created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("quotations: missing field %q", f)
		}
	}

	// vendor relation
	vendorField := col.Fields.GetByName("vendor")
	if rf, ok := vendorField.(*core.RelationField); ok {
		if rf.MaxSelect != 1 {
			t.Errorf("quotations.vendor: expected MaxSelect=1, got %d", rf.MaxSelect)
		}
	} else {
		t.Errorf("quotations.vendor is not a RelationField")
	}

	// images allows multiple uploads, signature is single
	imagesField := col.Fields.GetByName("images")
	if ff, ok := imagesField.(*core.FileField); ok {
		if ff.MaxSelect < 2 {
			t.Errorf("quotations.images: expected multi-file field, got MaxSelect=%d", ff.MaxSelect)
		}
	} else {
		t.Errorf("quotations.images is not a FileField")
	}
	sigField := col.Fields.GetByName("signature_client")
	if ff, ok := sigField.(*core.FileField); ok {
		if ff.MaxSelect != 1 {
			t.Errorf("quotations.signature_client: expected MaxSelect=1, got %d", ff.MaxSelect)
		}
	} else {
		t.Errorf("quotations.signature_client is not a FileField")
	}
}

func TestSetup_VendorsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("vendors")

	fields := []string{
		"name", "tax_id", "address", "phone", "contact", "website", "email",
		"stamp", "stamp_scale", "created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("vendors: missing field %q", f)
		}
	}

	stampField := col.Fields.GetByName("stamp")
	if ff, ok := stampField.(*core.FileField); ok {
		if ff.MaxSelect != 1 {
			t.Errorf("vendors.stamp: expected MaxSelect=1, got %d", ff.MaxSelect)
		}
	} else {
		t.Errorf("vendors.stamp is not a FileField")
	}
}

func TestSetup_ItemsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("items")

	fields := []string{"name", "unit", "default_price", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("items: missing field %q", f)
		}
	}

	priceField := col.Fields.GetByName("default_price")
	if _, ok := priceField.(*core.NumberField); !ok {
		t.Errorf("items.default_price is not a NumberField")
	}
}

func TestSetup_MemoPresetsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("memo_presets")

	for _, f := range []string{"content", "created"} {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("memo_presets: missing field %q", f)
		}
	}
}

func TestSetup_SystemConfigFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("system_config")

	for _, f := range []string{"key", "value", "updated"} {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("system_config: missing field %q", f)
		}
	}
}

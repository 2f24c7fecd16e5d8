package collections_test

import (
	"testing"

	"roadquote/collections"
	"roadquote/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	// Default PIN installed
	pin, err := app.FindFirstRecordByFilter("system_config", "key = 'system_pin'")
	if err != nil {
		t.Fatalf("system_pin not found after Seed(): %v", err)
	}
	if pin.GetString("value") != collections.DefaultPIN {
		t.Errorf("system_pin = %q, want %q", pin.GetString("value"), collections.DefaultPIN)
	}

	// Starter item dictionary
	itemsCol, _ := app.FindCollectionByNameOrId("items")
	items, err := app.FindAllRecords(itemsCol)
	if err != nil {
		t.Fatalf("query items error: %v", err)
	}
	if len(items) == 0 {
		t.Error("expected starter items to be created")
	}

	// Memo presets
	presetsCol, _ := app.FindCollectionByNameOrId("memo_presets")
	presets, _ := app.FindAllRecords(presetsCol)
	if len(presets) == 0 {
		t.Error("expected memo presets to be created")
	}

	// Default vendor
	vendorsCol, _ := app.FindCollectionByNameOrId("vendors")
	vendors, _ := app.FindAllRecords(vendorsCol)
	if len(vendors) != 1 {
		t.Fatalf("expected 1 vendor, got %d", len(vendors))
	}
	if vendors[0].GetFloat("stamp_scale") != 175 {
		t.Errorf("vendor stamp_scale = %v, want 175", vendors[0].GetFloat("stamp_scale"))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}

	itemsCol, _ := app.FindCollectionByNameOrId("items")
	first, _ := app.FindAllRecords(itemsCol)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	second, _ := app.FindAllRecords(itemsCol)
	if len(first) != len(second) {
		t.Errorf("item count changed after second Seed(): %d -> %d", len(first), len(second))
	}

	vendorsCol, _ := app.FindCollectionByNameOrId("vendors")
	vendors, _ := app.FindAllRecords(vendorsCol)
	if len(vendors) != 1 {
		t.Errorf("expected 1 vendor after idempotent seed, got %d", len(vendors))
	}
}

func TestSeed_KeepsRotatedPIN(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	testhelpers.SetSystemPIN(t, app, "654321")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	pin, err := app.FindFirstRecordByFilter("system_config", "key = 'system_pin'")
	if err != nil {
		t.Fatalf("system_pin not found: %v", err)
	}
	if pin.GetString("value") != "654321" {
		t.Errorf("Seed() overwrote a rotated PIN: got %q", pin.GetString("value"))
	}
}

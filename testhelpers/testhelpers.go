// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"encoding/json"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roadquote/collections"
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

// CreateTestVendor creates a vendor record with the given name and returns it.
func CreateTestVendor(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		t.Fatalf("failed to find vendors collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("tax_id", "24536718")
	record.Set("address", "彰化縣員林市中山路二段 153 號")
	record.Set("phone", "04-8323456")
	record.Set("contact", "陳志宏")
	record.Set("stamp_scale", 175)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test vendor: %v", err)
	}

	return record
}

// CreateTestQuotation creates a quotation record with a quote number, date
// and two line items, and returns it.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, quoNumber, date string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	items := []map[string]any{
		{"name": "AC瀝青混凝土鋪設", "unit": "平方公尺", "qty": 100, "price": 450, "note": ""},
		{"name": "路面刨除 (5cm)", "unit": "平方公尺", "qty": 100, "price": 120, "note": ""},
	}
	raw, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("failed to marshal test items: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quo_number", quoNumber)
	record.Set("customer_name", "王大明")
	record.Set("customer_phone", "0912345678")
	record.Set("project_name", "中山路面整修工程")
	record.Set("project_location", "中山路面整修工程")
	record.Set("date", date)
	record.Set("items", string(raw))
	record.Set("total", 59850)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestItem creates an item dictionary record and returns it.
func CreateTestItem(t *testing.T, app *pocketbase.PocketBase, name, unit string, defaultPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("items")
	if err != nil {
		t.Fatalf("failed to find items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("unit", unit)
	record.Set("default_price", defaultPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test item: %v", err)
	}

	return record
}

// CreateTestMemoPreset creates a memo preset record and returns it.
func CreateTestMemoPreset(t *testing.T, app *pocketbase.PocketBase, content string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("memo_presets")
	if err != nil {
		t.Fatalf("failed to find memo_presets collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("content", content)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test memo preset: %v", err)
	}

	return record
}

// SetSystemPIN writes the system_pin config record, replacing any existing one.
func SetSystemPIN(t *testing.T, app *pocketbase.PocketBase, pin string) {
	t.Helper()

	existing, err := app.FindFirstRecordByFilter("system_config", "key = 'system_pin'")
	if err == nil {
		existing.Set("value", pin)
		if err := app.Save(existing); err != nil {
			t.Fatalf("failed to update system PIN: %v", err)
		}
		return
	}

	col, err := app.FindCollectionByNameOrId("system_config")
	if err != nil {
		t.Fatalf("failed to find system_config collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("key", "system_pin")
	record.Set("value", pin)
	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save system PIN: %v", err)
	}
}

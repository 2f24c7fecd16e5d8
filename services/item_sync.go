package services

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// SyncItemDictionary upserts the autocomplete dictionary from the line
// items of a saved quotation. A new name+unit pair creates a dictionary
// entry; an existing pair whose price changed gets its default_price
// updated. Rows with an empty name and repeated pairs within one save
// are skipped.
func SyncItemDictionary(app *pocketbase.PocketBase, items []QuotationItem) error {
	col, err := app.FindCollectionByNameOrId("items")
	if err != nil {
		return fmt.Errorf("item sync: find items collection: %w", err)
	}

	processed := make(map[string]bool)
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		unit := strings.TrimSpace(item.Unit)

		key := name + "|" + unit
		if processed[key] {
			continue
		}
		processed[key] = true

		existing, err := app.FindFirstRecordByFilter(
			"items",
			"name = {:name} && unit = {:unit}",
			map[string]any{"name": name, "unit": unit},
		)
		if err != nil {
			r := core.NewRecord(col)
			r.Set("name", name)
			r.Set("unit", unit)
			r.Set("default_price", item.Price)
			if err := app.Save(r); err != nil {
				return fmt.Errorf("item sync: create %q: %w", name, err)
			}
			continue
		}

		if existing.GetFloat("default_price") != item.Price {
			existing.Set("default_price", item.Price)
			if err := app.Save(existing); err != nil {
				return fmt.Errorf("item sync: update %q: %w", name, err)
			}
		}
	}
	return nil
}

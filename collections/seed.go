package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// DefaultPIN is the access code installed on first startup. Operators are
// expected to rotate it through the reset flow.
const DefaultPIN = "113117"

type itemDef struct {
	name         string
	unit         string
	defaultPrice float64
}

type vendorDef struct {
	name    string
	taxID   string
	address string
	phone   string
	contact string
	email   string
}

// Seed installs the default PIN, a starter item dictionary, common memo
// presets and a default vendor. It is safe to call on every startup: each
// block skips itself when its collection already has data.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedSystemPIN(app); err != nil {
		return err
	}
	if err := seedItems(app); err != nil {
		return err
	}
	if err := seedMemoPresets(app); err != nil {
		return err
	}
	return seedVendors(app)
}

func seedSystemPIN(app *pocketbase.PocketBase) error {
	_, err := app.FindFirstRecordByFilter("system_config", "key = 'system_pin'")
	if err == nil {
		return nil // already present
	}

	col, err := app.FindCollectionByNameOrId("system_config")
	if err != nil {
		return fmt.Errorf("seed: could not find system_config collection: %w", err)
	}

	r := core.NewRecord(col)
	r.Set("key", "system_pin")
	r.Set("value", DefaultPIN)
	if err := app.Save(r); err != nil {
		return fmt.Errorf("seed: save system_pin: %w", err)
	}
	log.Println("seed: installed default system PIN")
	return nil
}

func seedItems(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("items")
	if err != nil {
		return fmt.Errorf("seed: could not find items collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query items: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	defs := []itemDef{
		{name: "AC瀝青混凝土鋪設", unit: "平方公尺", defaultPrice: 450},
		{name: "路面刨除 (5cm)", unit: "平方公尺", defaultPrice: 120},
		{name: "級配料回填夯實", unit: "立方公尺", defaultPrice: 850},
		{name: "透層油噴灑", unit: "平方公尺", defaultPrice: 35},
		{name: "人手孔調整", unit: "處", defaultPrice: 2500},
		{name: "標線繪製", unit: "公尺", defaultPrice: 60},
		{name: "機具進退場", unit: "式", defaultPrice: 15000},
	}
	for _, d := range defs {
		r := core.NewRecord(col)
		r.Set("name", d.name)
		r.Set("unit", d.unit)
		r.Set("default_price", d.defaultPrice)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save item %q: %w", d.name, err)
		}
	}
	log.Printf("seed: inserted %d starter items", len(defs))
	return nil
}

func seedMemoPresets(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("memo_presets")
	if err != nil {
		return fmt.Errorf("seed: could not find memo_presets collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query memo_presets: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	presets := []string{
		"本報價單有效期限為報價日起 30 天",
		"付款方式：完工驗收後 30 天內付清",
		"報價金額未含道路挖掘許可相關規費",
		"施工期間如遇雨天順延，不另行通知",
		"數量以實作實算為準",
	}
	for _, content := range presets {
		r := core.NewRecord(col)
		r.Set("content", content)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save memo preset: %w", err)
		}
	}
	log.Printf("seed: inserted %d memo presets", len(presets))
	return nil
}

func seedVendors(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		return fmt.Errorf("seed: could not find vendors collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query vendors: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	defs := []vendorDef{
		{
			name:    "宏達瀝青工程行",
			taxID:   "24536718",
			address: "彰化縣員林市中山路二段 153 號",
			phone:   "04-8323456",
			contact: "陳志宏",
			email:   "hongda.paving@gmail.com",
		},
	}
	for _, d := range defs {
		r := core.NewRecord(col)
		r.Set("name", d.name)
		r.Set("tax_id", d.taxID)
		r.Set("address", d.address)
		r.Set("phone", d.phone)
		r.Set("contact", d.contact)
		r.Set("email", d.email)
		r.Set("stamp_scale", 175)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save vendor %q: %w", d.name, err)
		}
	}
	log.Printf("seed: inserted %d vendors", len(defs))
	return nil
}

package services_test

import (
	"testing"

	"roadquote/services"
	"roadquote/testhelpers"
)

func TestBuildQuotationExportData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	vendor := testhelpers.CreateTestVendor(t, app, "宏達瀝青工程行")
	q := testhelpers.CreateTestQuotation(t, app, "20250315-01", "2025-03-15")
	q.Set("vendor", vendor.Id)
	q.Set("memo_html", "1. 本報價單有效期限為報價日起 30 天<br>2. 數量以實作實算為準")
	if err := app.Save(q); err != nil {
		t.Fatalf("save quotation: %v", err)
	}

	data, err := services.BuildQuotationExportData(app, q.Id)
	if err != nil {
		t.Fatalf("BuildQuotationExportData() error: %v", err)
	}

	if data.QuoNumber != "20250315-01" {
		t.Errorf("QuoNumber = %q, want 20250315-01", data.QuoNumber)
	}
	if data.Date != "2025-03-15" {
		t.Errorf("Date = %q, want 2025-03-15", data.Date)
	}
	if data.Vendor.Name != "宏達瀝青工程行" {
		t.Errorf("Vendor.Name = %q", data.Vendor.Name)
	}
	if len(data.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(data.Items))
	}
	if data.Items[0].LineTotal != 45000 {
		t.Errorf("Items[0].LineTotal = %v, want 45000", data.Items[0].LineTotal)
	}

	// 45000 + 12000 = 57000, tax 2850, total 59850
	if data.Totals.Subtotal != 57000 {
		t.Errorf("Totals.Subtotal = %v, want 57000", data.Totals.Subtotal)
	}
	if data.Totals.Tax != 2850 {
		t.Errorf("Totals.Tax = %v, want 2850", data.Totals.Tax)
	}
	if data.Totals.DisplayTotal != 59850 {
		t.Errorf("Totals.DisplayTotal = %v, want 59850", data.Totals.DisplayTotal)
	}

	if len(data.MemoLines) != 2 {
		t.Errorf("expected 2 memo lines, got %d", len(data.MemoLines))
	}
}

func TestBuildQuotationExportData_ManualTotal(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	q := testhelpers.CreateTestQuotation(t, app, "20250315-02", "2025-03-15")
	q.Set("manual_total", 60000)
	if err := app.Save(q); err != nil {
		t.Fatalf("save quotation: %v", err)
	}

	data, err := services.BuildQuotationExportData(app, q.Id)
	if err != nil {
		t.Fatalf("BuildQuotationExportData() error: %v", err)
	}

	if !data.Totals.TotalOverridden {
		t.Error("expected TotalOverridden")
	}
	if data.Totals.DisplayTotal != 60000 {
		t.Errorf("DisplayTotal = %v, want 60000", data.Totals.DisplayTotal)
	}
}

func TestBuildQuotationExportData_DanglingVendor(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	q := testhelpers.CreateTestQuotation(t, app, "20250315-03", "2025-03-15")

	data, err := services.BuildQuotationExportData(app, q.Id)
	if err != nil {
		t.Fatalf("BuildQuotationExportData() error: %v", err)
	}
	if data.Vendor.Name != "" {
		t.Errorf("expected empty vendor block, got %q", data.Vendor.Name)
	}
}

func TestBuildQuotationExportData_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, err := services.BuildQuotationExportData(app, "missing123"); err == nil {
		t.Error("expected error for unknown quotation id")
	}
}

package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateQuotationExcel(t *testing.T) {
	data := quotationExportFixture()

	result, err := GenerateQuotationExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuotationExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("generated file is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != "報價單" {
		t.Errorf("sheet name = %q, want 報價單", sheet)
	}

	// First item row lands at row 6.
	name, err := f.GetCellValue(sheet, "B6")
	if err != nil {
		t.Fatalf("read B6: %v", err)
	}
	if name != "AC瀝青混凝土鋪設" {
		t.Errorf("B6 = %q, want first item name", name)
	}

	// Per-row line total column.
	header, err := f.GetCellValue(sheet, "F5")
	if err != nil {
		t.Fatalf("read F5: %v", err)
	}
	if header != "小計" {
		t.Errorf("F5 = %q, want 小計", header)
	}
	lineTotal, err := f.GetCellValue(sheet, "F6")
	if err != nil {
		t.Fatalf("read F6: %v", err)
	}
	if lineTotal != "45000" {
		t.Errorf("F6 = %q, want 45000", lineTotal)
	}
}

func TestGenerateQuotationExcel_SubtotalOverride(t *testing.T) {
	items := []QuotationItem{
		{Name: "AC瀝青混凝土鋪設", Unit: "平方公尺", Qty: 100, Price: 450},
		{Name: "路面刨除 (5cm)", Unit: "平方公尺", Qty: 100, Price: 120},
	}

	data := quotationExportFixture()
	data.Totals = ComputeTotals(items, TotalsOverride{Subtotal: 55000})

	result, err := GenerateQuotationExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuotationExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("generated file is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)

	// Two item rows (6-7), blank row 8, then the summary block: the pinned
	// subtotal keeps the computed figure as a reference, the tax and total
	// rows stay with their computed values marked as not charged, and the
	// payable amount gets its own row.
	cells := map[string]string{
		"E9":  "小計 (原 NT$ 57,000):",
		"F9":  "NT$ 55,000",
		"E10": "營業稅 5% (不計):",
		"F10": "NT$ 2,850",
		"E11": "總計 (不計):",
		"F11": "NT$ 59,850",
		"E12": "實收金額:",
		"F12": "NT$ 55,000",
		"F13": "伍萬伍仟元整",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("read %s: %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}
}

func TestGenerateQuotationExcel_EmptyItems(t *testing.T) {
	data := &QuotationExportData{
		QuoNumber: "20250315-03",
		Vendor:    QuotationExportVendor{Name: "宏達瀝青工程行"},
		Totals:    ComputeTotals(nil, TotalsOverride{}),
	}

	result, err := GenerateQuotationExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuotationExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationExcel() returned empty bytes")
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1", "'+1"},
		{"-1", "'-1"},
		{"@cmd", "'@cmd"},
		{"normal", "normal"},
		{"", ""},
	}

	for _, tt := range tests {
		got := sanitizeExcelCell(tt.input)
		if got != tt.want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

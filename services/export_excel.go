package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuotationExcel creates an Excel workbook from the given quotation
// export data and returns the file contents as a byte slice.
func GenerateQuotationExcel(data *QuotationExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "報價單"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through G).
	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1] // "G"

	widths := []float64{6, 40, 10, 10, 14, 14, 24}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-4) ───────────────────────────────────────────────

	title := data.Vendor.Name
	if title == "" {
		title = "報價單"
	} else {
		title += " 報價單"
	}
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge number: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "單號: "+data.QuoNumber+"    日期: "+data.Date)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge customer: %w", err)
	}
	customerLine := "客戶: " + data.CustomerName
	if data.ProjectName != "" {
		customerLine += "    工程: " + data.ProjectName
	}
	f.SetCellValue(sheetName, "A3", sanitizeExcelCell(customerLine))
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: Column Headers ───────────────────────────────────────────

	headers := []string{"項次", "品項名稱", "單位", "數量", "單價", "小計", "備註"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s5", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Data Rows (starting row 6) ──────────────────────────────────────

	row := 6
	for _, item := range data.Items {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, item.SINo)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(item.Name))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(item.Unit))
		f.SetCellValue(sheetName, "D"+rowStr, item.Qty)
		f.SetCellValue(sheetName, "E"+rowStr, item.Price)
		f.SetCellValue(sheetName, "F"+rowStr, item.LineTotal)
		f.SetCellValue(sheetName, "G"+rowStr, sanitizeExcelCell(item.Note))

		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, bodyStyle)
		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++

	t := data.Totals

	setSummary := func(label, value string) {
		summaryRow := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "E"+summaryRow, label)
		f.SetCellStyle(sheetName, "E"+summaryRow, "E"+summaryRow, summaryLabelStyle)
		f.SetCellValue(sheetName, "F"+summaryRow, value)
		f.SetCellStyle(sheetName, "F"+summaryRow, "F"+summaryRow, summaryValueStyle)
		row++
	}

	subtotalLabel := "小計:"
	if t.SubtotalOverridden {
		subtotalLabel = fmt.Sprintf("小計 (原 %s):", FormatNTD(t.Subtotal))
	}
	setSummary(subtotalLabel, FormatNTD(t.DisplaySubtotal))

	// A pinned subtotal means no invoice: the tax and total stay on the
	// sheet with their computed figures, marked as not charged.
	taxLabel := "營業稅 5%:"
	if t.SubtotalOverridden {
		taxLabel = "營業稅 5% (不計):"
	}
	setSummary(taxLabel, FormatNTD(t.DisplayTax))

	totalLabel := "總計:"
	switch {
	case t.TotalOverridden:
		totalLabel = fmt.Sprintf("總計 (原 %s):", FormatNTD(t.Total))
	case t.SubtotalOverridden:
		totalLabel = "總計 (不計):"
	}
	setSummary(totalLabel, FormatNTD(t.DisplayTotal))

	if t.SubtotalOverridden {
		setSummary("實收金額:", FormatNTD(t.PayableTotal()))
	}

	setSummary("大寫:", t.TotalChinese)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}

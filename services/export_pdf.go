package services

import (
	"fmt"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF creates a PDF document for a quotation using
// maroto/v2. It returns the raw PDF bytes or an error.
func GenerateQuotationPDF(data *QuotationExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, data)
	addQuotationParties(m, data)
	addQuotationItemsTable(m, data)
	addQuotationTotals(m, data)
	addQuotationAmountInWords(m, data)
	addQuotationMemo(m, data)
	addQuotationSignatures(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuotationHeader adds the vendor name, "QUOTATION" title, quote number
// and issue date.
func addQuotationHeader(m core.Maroto, data *QuotationExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.Vendor.Name, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("QUOTATION", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(joinNonEmpty([]string{data.Vendor.Address, data.Vendor.Phone}, " | "), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("No: %s", data.QuoNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	if data.Date != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("Date: %s", data.Date), props.Text{
						Size:  8,
						Align: align.Right,
					}),
				),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addQuotationParties adds the customer block on the left and the issuing
// vendor's details on the right.
func addQuotationParties(m core.Maroto, data *QuotationExportData) {
	sectionLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	rightLabel := sectionLabel
	rightLabel.Align = align.Right
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}
	rightValue := valueStyle
	rightValue.Align = align.Right
	boldValue := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Left,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("CUSTOMER", sectionLabel)),
			col.New(6).Add(text.New("VENDOR", rightLabel)),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(data.CustomerName, boldValue)),
			col.New(6).Add(text.New(fmtField("Tax ID", data.Vendor.TaxID), rightValue)),
		),
	)

	projectLine := data.ProjectName
	if projectLine == "" {
		projectLine = data.ProjectLocation
	}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(fmtField("Project", projectLine), valueStyle)),
			col.New(6).Add(text.New(fmtField("Contact", data.Vendor.Contact), rightValue)),
		),
	)

	customerContact := joinNonEmpty([]string{data.CustomerContact, data.CustomerPhone}, " | ")
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(fmtField("Contact", customerContact), valueStyle)),
			col.New(6).Add(text.New(fmtField("Email", data.Vendor.Email), rightValue)),
		),
	)

	m.AddRows(row.New(3))
}

// addQuotationItemsTable adds the priced rows table with header.
func addQuotationItemsTable(m core.Maroto, data *QuotationExportData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("No", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Item", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Note", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, item := range data.Items {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		colNo := col.New(1).Add(text.New(fmt.Sprintf("%d", item.SINo), bodyText))
		colName := col.New(4).Add(text.New(item.Name, bodyTextLeft))
		colUnit := col.New(1).Add(text.New(item.Unit, bodyText))
		colQty := col.New(1).Add(text.New(formatQty(item.Qty), bodyTextRight))
		colPrice := col.New(2).Add(text.New(FormatNTD(item.Price), bodyTextRight))
		colAmount := col.New(2).Add(text.New(FormatNTD(item.LineTotal), bodyTextRight))
		colNote := col.New(1).Add(text.New(item.Note, bodyTextLeft))

		if cellStyle != nil {
			colNo = colNo.WithStyle(cellStyle)
			colName = colName.WithStyle(cellStyle)
			colUnit = colUnit.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colPrice = colPrice.WithStyle(cellStyle)
			colAmount = colAmount.WithStyle(cellStyle)
			colNote = colNote.WithStyle(cellStyle)
		}

		m.AddRows(
			row.New(7).Add(colNo, colName, colUnit, colQty, colPrice, colAmount, colNote),
		)
	}

	m.AddRows(row.New(2))
}

// addQuotationTotals adds right-aligned total rows. When an override is
// active the computed figures are shown alongside as a struck reference.
func addQuotationTotals(m core.Maroto, data *QuotationExportData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	t := data.Totals

	subtotalLabel := "Subtotal"
	if t.SubtotalOverridden {
		subtotalLabel = fmt.Sprintf("Subtotal (adjusted, was %s)", FormatNTD(t.Subtotal))
	}
	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New(subtotalLabel, labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatNTD(t.DisplaySubtotal), valueStyle)).WithStyle(summaryCell),
		),
	)

	// The subtotal override is the no-invoice arrangement: the tax and
	// total keep their computed figures but are marked superseded.
	taxLabel := "Tax 5%"
	if t.SubtotalOverridden {
		taxLabel = "Tax 5% (superseded)"
	}
	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New(taxLabel, labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatNTD(t.DisplayTax), valueStyle)).WithStyle(summaryCell),
		),
	)

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}
	grandLabelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: white}
	grandValueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: white}

	totalLabel := "Total"
	switch {
	case t.TotalOverridden:
		totalLabel = fmt.Sprintf("Total (adjusted, was %s)", FormatNTD(t.Total))
	case t.SubtotalOverridden:
		totalLabel = "Total (superseded)"
	}
	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New(totalLabel, grandLabelStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatNTD(t.DisplayTotal), grandValueStyle)).WithStyle(grandCell),
		),
	)

	if t.SubtotalOverridden {
		m.AddRows(
			row.New(8).Add(
				col.New(9).Add(text.New("Amount Due", grandLabelStyle)).WithStyle(grandCell),
				col.New(3).Add(text.New(FormatNTD(t.PayableTotal()), grandValueStyle)).WithStyle(grandCell),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addQuotationAmountInWords adds the amount in Chinese financial numerals.
func addQuotationAmountInWords(m core.Maroto, data *QuotationExportData) {
	if data.Totals.TotalChinese == "" {
		return
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: %s", data.Totals.TotalChinese), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addQuotationMemo adds the notes section if non-empty.
func addQuotationMemo(m core.Maroto, data *QuotationExportData) {
	if len(data.MemoLines) == 0 {
		return
	}

	sectionLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("NOTES", sectionLabel)),
		),
	)
	for _, line := range data.MemoLines {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(line, props.Text{
					Size:  8,
					Align: align.Left,
				})),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addQuotationSignatures adds the dual signature section at the bottom.
func addQuotationSignatures(m core.Maroto, data *QuotationExportData) {
	m.AddRows(row.New(10))

	lineStyle := props.Text{
		Size:  8,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("____________________________", lineStyle)),
			col.New(6).Add(text.New("____________________________", lineStyle)),
		),
	)

	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	customerLabel := "Customer Signature"
	if data.SignedAt != "" {
		customerLabel = fmt.Sprintf("Customer Signature (signed %s)", data.SignedAt)
	}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Vendor Seal / Signature", labelStyle)),
			col.New(6).Add(text.New(customerLabel, labelStyle)),
		),
	)
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	result := ""
	for i, p := range nonEmpty {
		if i > 0 {
			result += sep
		}
		result += p
	}
	return result
}

// fmtField returns "label: value" if value is non-empty, otherwise empty string.
func fmtField(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", label, value)
}

// formatQty returns a string representation of the quantity value.
// Whole numbers are formatted without decimals; fractional values get 2 decimal places.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}

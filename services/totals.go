package services

import "math"

// QuotationItem is one row of a quotation's items array, stored as a JSON
// array on the quotations record.
type QuotationItem struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Qty   float64 `json:"qty"`
	Price float64 `json:"price"`
	Note  string  `json:"note"`
}

// TotalsOverride carries the manual figures an operator may pin on a
// quotation. Zero means unset; only values greater than zero take effect.
// When both are set, the subtotal override wins.
type TotalsOverride struct {
	Subtotal float64
	Total    float64
}

// QuotationTotals holds the computed and displayed money figures for a
// quotation. Subtotal/Tax/Total are always derived from the line items;
// the Display fields are what the document shows once any override is
// applied. TotalChinese renders the payable amount in traditional Chinese
// financial numerals.
type QuotationTotals struct {
	Subtotal float64
	Tax      float64
	Total    float64

	DisplaySubtotal float64
	DisplayTax      float64
	DisplayTotal    float64

	SubtotalOverridden bool
	TotalOverridden    bool

	TotalChinese string
}

// ComputeTotals sums the line items (price * qty, non-finite inputs coerce
// to 0), applies 5% business tax rounded half-up to the dollar, then
// resolves any manual override:
//   - a subtotal override pins the display subtotal (the "no invoice"
//     arrangement, where the pinned amount is what the customer pays);
//     the display tax and total keep the computed figures so the document
//     can still show them, annotated as superseded;
//   - a total override back-computes subtotal = round(total / 1.05) and
//     tax as the remainder, so the three display figures stay consistent.
//
// The computed figures are kept alongside as the superseded reference.
func ComputeTotals(items []QuotationItem, override TotalsOverride) QuotationTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += nz(item.Price) * nz(item.Qty)
	}

	tax := math.Round(subtotal * 0.05)
	total := subtotal + tax

	t := QuotationTotals{
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		DisplaySubtotal: subtotal,
		DisplayTax:      tax,
		DisplayTotal:    total,
	}

	switch {
	case override.Subtotal > 0:
		t.SubtotalOverridden = true
		t.DisplaySubtotal = override.Subtotal
	case override.Total > 0:
		t.TotalOverridden = true
		t.DisplayTotal = override.Total
		t.DisplaySubtotal = math.Round(override.Total / 1.05)
		t.DisplayTax = override.Total - t.DisplaySubtotal
	}

	t.TotalChinese = NumberToChinese(t.PayableTotal())
	return t
}

// PayableTotal is the figure the customer actually pays: the pinned
// subtotal in the no-invoice arrangement, otherwise the display total.
// The amount in words always renders this figure.
func (t QuotationTotals) PayableTotal() float64 {
	if t.SubtotalOverridden {
		return t.DisplaySubtotal
	}
	return t.DisplayTotal
}

func nz(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

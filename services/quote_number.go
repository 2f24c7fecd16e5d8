package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
)

// FormatQuoteNumber constructs a quotation number from its date part
// (YYYYMMDD) and daily sequence.
func FormatQuoteNumber(datePart string, sequence int) string {
	return fmt.Sprintf("%s-%02d", datePart, sequence)
}

// nextSequence returns the successor of the two-digit suffix of an existing
// quotation number. Anything unparseable restarts the day at 1.
func nextSequence(quoNumber string) int {
	_, suffix, ok := strings.Cut(quoNumber, "-")
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 1
	}
	return n + 1
}

// GenerateQuoteNumber allocates the next quotation number for a day.
// Format: YYYYMMDD-NN with the sequence restarting at 01 each day. The
// highest existing number for the day is found with a string range filter,
// which is exact for the fixed-width format and never matches other days.
// Allocation is best-effort: a failed lookup falls back to 01 rather than
// blocking the save.
func GenerateQuoteNumber(app *pocketbase.PocketBase, date time.Time) string {
	datePart := date.Format("20060102")

	records, err := app.FindRecordsByFilter(
		"quotations",
		"quo_number >= {:lo} && quo_number <= {:hi}",
		"-quo_number",
		1,
		0,
		map[string]any{
			"lo": datePart + "-00",
			"hi": datePart + "-99",
		},
	)
	if err != nil {
		log.Printf("quote_number.go: number lookup failed for %s: %v", datePart, err)
		return FormatQuoteNumber(datePart, 1)
	}

	sequence := 1
	if len(records) > 0 {
		sequence = nextSequence(records[0].GetString("quo_number"))
	}
	return FormatQuoteNumber(datePart, sequence)
}

package services

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

var (
	memoNumberPrefix = regexp.MustCompile(`^\d+\.\s*`)
	reBreakTags      = regexp.MustCompile(`(?i)<br\s*/?>|</div>|</p>`)
	reHTMLTags       = regexp.MustCompile(`<[^>]*>`)
)

// ExtractMemoLines splits memo text into preset candidates. Leading
// "N. " numbering is stripped, whitespace trimmed, and fragments of 3
// characters or less and duplicates are dropped.
func ExtractMemoLines(memo string) []string {
	var lines []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(memo, "\n") {
		clean := strings.TrimSpace(memoNumberPrefix.ReplaceAllString(line, ""))
		if utf8.RuneCountInString(clean) <= 3 || seen[clean] {
			continue
		}
		seen[clean] = true
		lines = append(lines, clean)
	}
	return lines
}

// MemoPlainText flattens memo HTML into plain text, turning line-break
// tags into newlines so ExtractMemoLines sees one note per line.
func MemoPlainText(memoHTML string) string {
	s := reBreakTags.ReplaceAllString(memoHTML, "\n")
	s = reHTMLTags.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}

// SyncMemoPresets adds any new note lines from a saved quotation's memo to
// the memo_presets collection. Lines already present are left alone.
func SyncMemoPresets(app *pocketbase.PocketBase, memoHTML string) error {
	lines := ExtractMemoLines(MemoPlainText(memoHTML))
	if len(lines) == 0 {
		return nil
	}

	col, err := app.FindCollectionByNameOrId("memo_presets")
	if err != nil {
		return fmt.Errorf("memo sync: find memo_presets collection: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("memo sync: query presets: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, r := range existing {
		known[strings.TrimSpace(r.GetString("content"))] = true
	}

	for _, line := range lines {
		if known[line] {
			continue
		}
		r := core.NewRecord(col)
		r.Set("content", line)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("memo sync: create preset: %w", err)
		}
		known[line] = true
	}
	return nil
}

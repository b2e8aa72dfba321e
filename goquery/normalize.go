package goquery

import "strings"

// CleanText normalizes raw text node content: newlines become spaces,
// every maximal run of whitespace collapses to a single space, and
// leading/trailing whitespace is trimmed. An empty result means the
// caller drops the text node (table cells are the exception and may
// keep empty values). CleanText is idempotent.
func CleanText(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

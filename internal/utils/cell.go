package utils

import "strings"

// non-breaking, thin and narrow spaces plus a stray BOM
var spaceReplacer = strings.NewReplacer("\u00A0", " ", "\u2009", " ", "\u202F", " ", "\uFEFF", "")

// CleanCell turns exotic spaces into plain ones and trims the value.
// Everything else is kept verbatim: part numbers like "00123" must stay text.
func CleanCell(s string) string {
	return strings.TrimSpace(spaceReplacer.Replace(s))
}

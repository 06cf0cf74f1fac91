package service

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adrg/strutil/metrics"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Substitution costs two edits, so the distance counts insertions and deletions only.
var indel = &metrics.Levenshtein{
	CaseSensitive: true,
	InsertCost:    1,
	DeleteCost:    1,
	ReplaceCost:   2,
}

// Ratio is the edit-distance similarity of a and b as a percentage (0..100).
// Comparison is case-sensitive; callers normalize first when they need to.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	r := float64(total-indel.Distance(a, b)) / float64(total)
	return int(math.RoundToEven(100 * r))
}

// TokenSetRatio compares the word sets of a and b, ignoring order and repeats.
// A string fully contained in the other scores 100.
func TokenSetRatio(a, b string) int {
	pa, pb := tokenText(a), tokenText(b)
	if pa == "" || pb == "" {
		return 0
	}
	return fuzzy.TokenSetRatio(pa, pb)
}

// tokenText lower-cases s, treats every non-word rune as a separator and drops
// the Latin-1 supplement range. The fuzzy package's own cleanup would also drop
// every other non-ASCII rune and split on '_'.
func tokenText(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 128 && r <= 255:
			return -1
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			return unicode.ToLower(r)
		default:
			return ' '
		}
	}, s)
	return strings.Join(strings.Fields(cleaned), " ")
}

// samePrefix reports whether a and b are non-empty and share their first n runes
// (a shorter string compares whole).
func samePrefix(a, b string, n int) bool {
	if a == "" || b == "" {
		return false
	}
	return runePrefix(a, n) == runePrefix(b, n)
}

func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

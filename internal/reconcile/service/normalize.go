package service

import "strings"

// Characters stripped by every normalizer. The space is handled per variant.
const punctChars = `[@_!#$%^&*()<>?/\|}{~:].,-'`

// Vendor words removed from manufacturer names. The leading space keeps them from
// eating the middle of a word.
var fluffWords = []string{
	" manufacturing", " professional", " appliance", " foodservice", " industries",
	" company", " mfg", " refrigeration", " commercial", " systems", " products",
	" equipment", " foods", " international", " water heater", " technologies",
	" ovens", " range",
}

// Names containing this skip fluff removal ("American Range" must keep "range").
const fluffGuard = "american"

var legalSuffixes = []string{" llc", " inc", " co"}

// NamedKey pairs an original string with its comparison key.
type NamedKey struct {
	Original string
	Key      string
}

// GenericKey lower-cases s and drops punctuation and spaces, leaving the compact
// token used for model and part comparison.
func GenericKey(s string) string {
	return strings.TrimSpace(stripChars(strings.ToLower(s), punctChars+" "))
}

// ModelKey is GenericKey without the word "series".
func ModelKey(s string) string {
	k := GenericKey(s)
	for {
		next := strings.TrimSpace(strings.ReplaceAll(k, "series", ""))
		if next == k {
			return k
		}
		k = next
	}
}

// ManufacturerKey canonicalizes a vendor name: punctuation out (spaces kept),
// fluff words out unless the name is "american...", then a trailing legal suffix.
// Steps repeat until nothing changes.
func ManufacturerKey(s string) string {
	k := strings.TrimSpace(stripChars(strings.ToLower(s), punctChars))
	for {
		next := scrubManufacturer(k)
		if next == k {
			return k
		}
		k = next
	}
}

func NormalizeManufacturer(s string) NamedKey {
	return NamedKey{Original: s, Key: ManufacturerKey(s)}
}

func scrubManufacturer(k string) string {
	for _, fluff := range fluffWords {
		if strings.Contains(k, fluffGuard) {
			break
		}
		k = strings.ReplaceAll(k, fluff, "")
	}
	for _, suf := range legalSuffixes {
		if strings.HasSuffix(k, suf) {
			k = strings.TrimSuffix(k, suf)
			break
		}
	}
	return strings.TrimSpace(k)
}

func stripChars(s, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

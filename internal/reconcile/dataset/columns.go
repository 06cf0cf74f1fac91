package dataset

import (
	"regexp"
	"strings"
)

// Column names of the input datasets. Alternatives are separated by "|".
const (
	ColCustomerMfg   = "Customer_Mfg_Name"
	ColCustomerModel = "Customer_Model_Name"
	ColCustomerPart  = "Customer_Part_Number|Customer_Part_Name"

	ColMfgName   = "Name"
	ColMfgCode   = "Code"
	ColMfgParent = "Parent Manufacturer"

	ColItemID   = "primaryId"
	ColItemPart = "manufacturerPartNumber"
	ColItemMfg  = "manufacturerName"
)

var reHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey: lower case, runs of non-alphanumerics become one space.
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveColumn finds the header matching want, exactly first and then after
// normalization ("customer mfg name" matches Customer_Mfg_Name). Unlike a fuzzy
// lookup it never guesses: no match means the column is missing.
func resolveColumn(headers []string, want string) (string, bool) {
	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}
	for _, a := range alts {
		for _, h := range headers {
			if h == a {
				return h, true
			}
		}
	}
	for _, a := range alts {
		na := normHeaderKey(a)
		for _, h := range headers {
			if normHeaderKey(h) == na {
				return h, true
			}
		}
	}
	return "", false
}

// first alternative of a column name, used in error messages
func primary(want string) string {
	name, _, _ := strings.Cut(want, "|")
	return name
}

package sanitize

import (
	"strings"

	"debtwatch/models"
)

// typeRule maps case-insensitive substrings to a security type. Rules are
// evaluated top to bottom; the first match wins.
type typeRule struct {
	substrings []string
	result     models.SecurityType
}

// securityTypeRules classifies security detail descriptions. Unmatched
// input falls through to OTHER.
var securityTypeRules = []typeRule{
	{[]string{"bill"}, models.SecurityTypeBill},
	{[]string{"tips", "inflation"}, models.SecurityTypeTIPS},
	{[]string{"floating", "frn"}, models.SecurityTypeFRN},
	// The securities enum has no CMB member; cash management bills fold
	// into BILL here and only the auction classifier keeps them distinct.
	{[]string{"cmb", "cash management"}, models.SecurityTypeBill},
	{[]string{"bond"}, models.SecurityTypeBond},
	{[]string{"note"}, models.SecurityTypeNote},
}

// auctionTypeRules classifies auction security types, which report cash
// management bills separately. Unmatched input falls through to NOTE, not
// OTHER; this asymmetry matches long-standing upstream behavior that
// downstream dashboards depend on.
var auctionTypeRules = []typeRule{
	{[]string{"bill"}, models.SecurityTypeBill},
	{[]string{"tips", "inflation"}, models.SecurityTypeTIPS},
	{[]string{"floating", "frn"}, models.SecurityTypeFRN},
	{[]string{"cmb", "cash management"}, models.SecurityTypeCMB},
	{[]string{"bond"}, models.SecurityTypeBond},
	{[]string{"note"}, models.SecurityTypeNote},
}

func classify(s string, rules []typeRule, fallback models.SecurityType) models.SecurityType {
	lower := strings.ToLower(s)
	for _, rule := range rules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.result
			}
		}
	}
	return fallback
}

// NormalizeSecurityType classifies a security detail description.
func NormalizeSecurityType(s string) models.SecurityType {
	return classify(s, securityTypeRules, models.SecurityTypeOther)
}

// NormalizeAuctionSecurityType classifies an auction security type string.
func NormalizeAuctionSecurityType(s string) models.SecurityType {
	return classify(s, auctionTypeRules, models.SecurityTypeNote)
}

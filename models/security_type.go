package models

// SecurityType classifies a Treasury security by product family.
// The values mirror the security_type postgres enum.
type SecurityType string

const (
	SecurityTypeBill  SecurityType = "BILL"
	SecurityTypeNote  SecurityType = "NOTE"
	SecurityTypeBond  SecurityType = "BOND"
	SecurityTypeTIPS  SecurityType = "TIPS"
	SecurityTypeFRN   SecurityType = "FRN"
	SecurityTypeOther SecurityType = "OTHER"

	// SecurityTypeCMB is only valid for auction records, where cash
	// management bills are reported as their own product family.
	SecurityTypeCMB SecurityType = "CMB"
)

// SecurityTypes is the closed set used for security detail records.
var SecurityTypes = []SecurityType{
	SecurityTypeBill,
	SecurityTypeNote,
	SecurityTypeBond,
	SecurityTypeTIPS,
	SecurityTypeFRN,
	SecurityTypeOther,
}

// AuctionSecurityTypes is the closed set used for auction records.
// It substitutes CMB for OTHER.
var AuctionSecurityTypes = []SecurityType{
	SecurityTypeBill,
	SecurityTypeNote,
	SecurityTypeBond,
	SecurityTypeTIPS,
	SecurityTypeFRN,
	SecurityTypeCMB,
}

// ValidAuctionType reports whether t is a member of the auction enum.
func ValidAuctionType(t SecurityType) bool {
	for _, v := range AuctionSecurityTypes {
		if v == t {
			return true
		}
	}
	return false
}

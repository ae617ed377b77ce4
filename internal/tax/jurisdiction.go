package tax

import "strings"

// Jurisdiction classifies a delivery destination relative to the
// seller's home state. IntraState splits tax into CGST+SGST;
// InterState levies IGST.
type Jurisdiction string

const (
	IntraState Jurisdiction = "intra_state"
	InterState Jurisdiction = "inter_state"
)

// homeStateMarkers are matched case-insensitively against the free-text
// shipping address. A structured state-code lookup can replace this
// without touching the calculation code; see ClassifyJurisdiction.
var homeStateMarkers = []string{"karnataka", "bengaluru", "bangalore"}

// ClassifyJurisdiction decides IntraState vs InterState from a
// free-text shipping address. Empty or unrecognized addresses default
// to InterState; there is no "unknown" state.
//
// This is a substring heuristic, not an address parse. An address that
// merely mentions a marker word (for example in a delivery note) will
// be classified IntraState.
func ClassifyJurisdiction(shippingAddress string) Jurisdiction {
	addr := strings.ToLower(shippingAddress)
	for _, marker := range homeStateMarkers {
		if strings.Contains(addr, marker) {
			return IntraState
		}
	}
	return InterState
}

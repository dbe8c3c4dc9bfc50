package entities

// PriceQuote is a pure projection of (package, guest counts). It is
// recomputed on every input change and has no identity of its own; only
// its three numeric fields are copied onto a submitted booking.
type PriceQuote struct {
	Adults         int     `json:"adults"`
	Children       int     `json:"children"`
	HeadcountTotal int     `json:"headcount_total"`
	Subtotal       float64 `json:"subtotal"`
	DepositDue     float64 `json:"deposit_due"`
	IsEligible     bool    `json:"is_eligible"`
}

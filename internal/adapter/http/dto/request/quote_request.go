package request

// QuoteRequest asks for a price projection for a package. Adults and
// Children stay strings on purpose: the booking form sends whatever is in
// the inputs and expects garbage to price as zero guests.
type QuoteRequest struct {
	PackageID string `json:"package_id" binding:"required"`
	Adults    string `json:"adults"`
	Children  string `json:"children"`
}

package types

// PriceQuote is the rental price for a name over a duration. Base and
// Premium are wei, Fee is the protocol fee the enforcement layer will
// collect on the registration call. Computed on demand, never persisted.
type PriceQuote struct {
	Base    Int `json:"base"`
	Premium Int `json:"premium"`
	Fee     Int `json:"fee"`
}

// Total is the full amount a caller must attach: rental plus protocol fee.
func (q PriceQuote) Total() Int {
	return Add(Add(q.Base, q.Premium), q.Fee)
}

// FeeState mirrors the fee contract's current charging state.
type FeeState struct {
	Fee           Int    `json:"fee"`
	OracleFee     Int    `json:"oracleFee"`
	NextResetTime uint64 `json:"nextResetTime"`
}

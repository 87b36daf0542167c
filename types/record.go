package types

import (
	"time"
)

// Account is one row of the native-value ledger. The application's own
// address and the fee contract's address are ordinary accounts.
type Account struct {
	ID      UUID    `json:"id"`
	Address Address `json:"address"`
	Balance Int     `json:"balance"`

	IsDeleted int       `json:"isDeleted"`
	CreatedAt time.Time `json:"createAt"`
	UpdatedAt time.Time `json:"updateAt"`
}

// Record is the business payload written by a protected submission. Paid
// holds the value left for the record once the protocol fee was deducted.
type Record struct {
	ID      UUID    `json:"id"`
	Creator Address `json:"creator"`
	Content string  `json:"content"`
	Paid    Int     `json:"paid"`

	IsDeleted int       `json:"isDeleted"`
	CreatedAt time.Time `json:"createAt"`
	UpdatedAt time.Time `json:"updateAt"`
}

// FeeEvent is the audit row of one successful protected call.
type FeeEvent struct {
	ID       UUID    `json:"id"`
	Caller   Address `json:"caller"`
	Method   string  `json:"method"`
	Fee      Int     `json:"fee"`
	Value    Int     `json:"value"`
	Residual Int     `json:"residual"`
	Refund   Int     `json:"refund"`

	CreatedAt time.Time `json:"createAt"`
}

// RateSnapshot is one persisted reading of the native/USD rate feed,
// 8-decimal fixed point.
type RateSnapshot struct {
	ID   UUID `json:"id"`
	Rate Int  `json:"rate"`

	CreatedAt time.Time `json:"createAt"`
}

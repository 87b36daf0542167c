package fee

import (
	"context"

	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/types"
)

// Call describes one protected invocation: who calls, what they attached
// and how leftovers are treated once the fee is taken.
type Call struct {
	Caller types.Address
	Method string
	Value  types.Int

	// Payable exposes value - fee to the inner logic for the duration of
	// the call. Non-payable calls leave the leftover on the application
	// balance without recording it.
	Payable bool

	// RefundRemaining sends the full application balance back to the
	// caller once the inner logic succeeds.
	RefundRemaining bool
}

// InnerFunc is the business logic run under fee enforcement. Everything it
// writes through the scope commits or rolls back with the fee transfer.
type InnerFunc func(ctx context.Context, scope *CallScope) error

// CallScope is handed to inner logic while its protected call is live.
type CallScope struct {
	module *FeeModule
	txRepo repo.TxRepo
}

// ValueAfterFee returns the value left over once the fee was deducted,
// zero for non-payable calls.
func (cs *CallScope) ValueAfterFee() types.Int {
	return cs.module.ResidualValue()
}

// Repo returns the repos bound to the protected call's transaction.
func (cs *CallScope) Repo() repo.TxRepo {
	return cs.txRepo
}

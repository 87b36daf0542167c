package fee

import (
	"errors"
	"fmt"

	"github.com/haven1-network/pricer/types"
)

var (
	// ErrAlreadyInitialized is returned by every Initialize after the first.
	ErrAlreadyInitialized = errors.New("fee module already initialized")

	// ErrInvalidFeeContract is returned when the fee contract reference is
	// nil or bound to the zero address.
	ErrInvalidFeeContract = errors.New("invalid fee contract")

	// ErrNotInitialized is returned by protected calls before Initialize.
	ErrNotInitialized = errors.New("fee module not initialized")
)

// InsufficientFundsError reports a protected call whose supplied value or
// backing balance does not cover the current fee.
type InsufficientFundsError struct {
	Balance types.Int
	Fee     types.Int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, fee %s", e.Balance, e.Fee)
}

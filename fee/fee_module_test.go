package fee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/haven1-network/pricer/feecontract"
	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/testhelper"
	"github.com/haven1-network/pricer/types"
)

func setupFeeModule(t *testing.T, fee types.Int) (*FeeModule, *testhelper.SimFeeContract, repo.Repo, types.Address, types.Address) {
	ctx := context.Background()
	r := testhelper.SetupRepo(t)
	fm := NewFeeModule(r, log.New())
	sim := testhelper.NewSimFeeContract(fee)
	contractAddr := testhelper.RandAddress()
	appAddr := testhelper.RandAddress()
	assert.NoError(t, fm.Initialize(ctx, feecontract.NewRef(sim, contractAddr), appAddr))

	return fm, sim, r, contractAddr, appAddr
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	r := testhelper.SetupRepo(t)
	sim := testhelper.NewSimFeeContract(types.NewInt(25))
	contractAddr := testhelper.RandAddress()
	appAddr := testhelper.RandAddress()

	t.Run("rejects nil contract", func(t *testing.T) {
		fm := NewFeeModule(r, log.New())
		assert.Equal(t, ErrInvalidFeeContract, fm.Initialize(ctx, nil, appAddr))
		assert.Equal(t, ErrInvalidFeeContract, fm.Initialize(ctx, feecontract.NewRef(nil, contractAddr), appAddr))
	})

	t.Run("rejects zero contract address", func(t *testing.T) {
		fm := NewFeeModule(r, log.New())
		assert.Equal(t, ErrInvalidFeeContract, fm.Initialize(ctx, feecontract.NewRef(sim, types.ZeroAddress), appAddr))
	})

	t.Run("initializes once and enables grace", func(t *testing.T) {
		fm := NewFeeModule(r, log.New())
		assert.NoError(t, fm.Initialize(ctx, feecontract.NewRef(sim, contractAddr), appAddr))
		assert.True(t, sim.InGrace(appAddr))

		assert.Equal(t, ErrAlreadyInitialized, fm.Initialize(ctx, feecontract.NewRef(sim, contractAddr), appAddr))
	})

	t.Run("grace failure leaves module uninitialized", func(t *testing.T) {
		fm := NewFeeModule(r, log.New())
		failing := testhelper.NewSimFeeContract(types.NewInt(25))
		failing.Fail("SetGraceContract", xerrors.New("contract reverted"))
		assert.Error(t, fm.Initialize(ctx, feecontract.NewRef(failing, contractAddr), appAddr))

		failing.Fail("SetGraceContract", nil)
		assert.NoError(t, fm.Initialize(ctx, feecontract.NewRef(failing, contractAddr), appAddr))
	})

	t.Run("protected call requires initialize", func(t *testing.T) {
		fm := NewFeeModule(r, log.New())
		err := fm.ProtectedCall(ctx, &Call{Caller: appAddr, Method: "noop", Value: types.NewInt(100)}, func(ctx context.Context, scope *CallScope) error {
			return nil
		})
		assert.Equal(t, ErrNotInitialized, err)

		err = fm.Multicall(ctx, &Call{Caller: appAddr, Method: "noop", Value: types.NewInt(100)}, nil)
		assert.Equal(t, ErrNotInitialized, err)
	})
}

func TestProtectedCall(t *testing.T) {
	ctx := context.Background()
	fee := types.NewInt(25)
	fm, sim, r, contractAddr, appAddr := setupFeeModule(t, fee)
	caller := testhelper.RandAddress()

	var seen types.Int
	call := &Call{Caller: caller, Method: "submitRecord", Value: types.NewInt(100), Payable: true}
	err := fm.ProtectedCall(ctx, call, func(ctx context.Context, scope *CallScope) error {
		seen = scope.ValueAfterFee()
		return scope.Repo().RecordRepo().CreateRecord(ctx, &types.Record{
			ID:        types.NewUUID(),
			Creator:   caller,
			Content:   "first",
			Paid:      seen,
			IsDeleted: repo.NotDeleted,
		})
	})
	assert.NoError(t, err)

	// inner saw value - fee, cleared once the call returned
	assert.Equal(t, types.NewInt(75), seen)
	assert.True(t, fm.ResidualValue().IsZero())
	assert.Equal(t, 1, sim.UpdateCalls())

	contractBalance, err := r.AccountRepo().Balance(ctx, contractAddr)
	assert.NoError(t, err)
	assert.Equal(t, fee, contractBalance)

	appBalance, err := r.AccountRepo().Balance(ctx, appAddr)
	assert.NoError(t, err)
	assert.Equal(t, types.NewInt(75), appBalance)

	events, err := r.FeeEventRepo().ListFeeEventByCaller(ctx, caller)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(events))
	assert.Equal(t, fee, events[0].Fee)
	assert.Equal(t, types.NewInt(100), events[0].Value)
	assert.Equal(t, types.NewInt(75), events[0].Residual)
	assert.True(t, events[0].Refund.IsZero())
	assert.Equal(t, "submitRecord", events[0].Method)

	records, err := r.RecordRepo().ListRecordByCreator(ctx, caller)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(records))
	assert.Equal(t, types.NewInt(75), records[0].Paid)
}

func TestProtectedCallRefund(t *testing.T) {
	ctx := context.Background()
	fee := types.NewInt(25)
	fm, _, r, contractAddr, appAddr := setupFeeModule(t, fee)
	caller := testhelper.RandAddress()

	call := &Call{Caller: caller, Method: "submitRecordAndRefund", Value: types.NewInt(100), Payable: true, RefundRemaining: true}
	err := fm.ProtectedCall(ctx, call, func(ctx context.Context, scope *CallScope) error {
		return nil
	})
	assert.NoError(t, err)

	// everything beyond the fee went back to the caller
	callerBalance, err := r.AccountRepo().Balance(ctx, caller)
	assert.NoError(t, err)
	assert.Equal(t, types.NewInt(75), callerBalance)

	appBalance, err := r.AccountRepo().Balance(ctx, appAddr)
	assert.NoError(t, err)
	assert.True(t, appBalance.IsZero())

	contractBalance, err := r.AccountRepo().Balance(ctx, contractAddr)
	assert.NoError(t, err)
	assert.Equal(t, fee, contractBalance)

	events, err := r.FeeEventRepo().ListFeeEventByCaller(ctx, caller)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(events))
	assert.Equal(t, types.NewInt(75), events[0].Refund)
}

func TestProtectedCallInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	fee := types.NewInt(25)
	fm, _, r, contractAddr, appAddr := setupFeeModule(t, fee)
	caller := testhelper.RandAddress()

	innerRan := false
	call := &Call{Caller: caller, Method: "submitRecord", Value: types.NewInt(10), Payable: true}
	err := fm.ProtectedCall(ctx, call, func(ctx context.Context, scope *CallScope) error {
		innerRan = true
		return nil
	})

	var insufficient *InsufficientFundsError
	assert.True(t, xerrors.As(err, &insufficient))
	assert.Equal(t, fee, insufficient.Fee)
	assert.Equal(t, types.NewInt(10), insufficient.Balance)
	assert.False(t, innerRan)

	// no value moved, the deposit rolled back with the call
	appBalance, err := r.AccountRepo().Balance(ctx, appAddr)
	assert.NoError(t, err)
	assert.True(t, appBalance.IsZero())

	contractBalance, err := r.AccountRepo().Balance(ctx, contractAddr)
	assert.NoError(t, err)
	assert.True(t, contractBalance.IsZero())

	events, err := r.FeeEventRepo().ListFeeEvent(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(events))
}

func TestProtectedCallRollback(t *testing.T) {
	ctx := context.Background()
	fee := types.NewInt(25)
	fm, sim, r, contractAddr, appAddr := setupFeeModule(t, fee)
	caller := testhelper.RandAddress()

	t.Run("inner failure rolls everything back", func(t *testing.T) {
		record := &types.Record{ID: types.NewUUID(), Creator: caller, Content: "doomed", Paid: types.NewInt(75), IsDeleted: repo.NotDeleted}
		innerErr := xerrors.New("inner logic failed")

		call := &Call{Caller: caller, Method: "submitRecord", Value: types.NewInt(100), Payable: true}
		err := fm.ProtectedCall(ctx, call, func(ctx context.Context, scope *CallScope) error {
			if err := scope.Repo().RecordRepo().CreateRecord(ctx, record); err != nil {
				return err
			}
			return innerErr
		})
		assert.True(t, xerrors.Is(err, innerErr))
		assert.True(t, fm.ResidualValue().IsZero())

		has, err := r.RecordRepo().HasRecord(ctx, record.ID)
		assert.NoError(t, err)
		assert.False(t, has)

		appBalance, err := r.AccountRepo().Balance(ctx, appAddr)
		assert.NoError(t, err)
		assert.True(t, appBalance.IsZero())

		contractBalance, err := r.AccountRepo().Balance(ctx, contractAddr)
		assert.NoError(t, err)
		assert.True(t, contractBalance.IsZero())
	})

	t.Run("fee refresh failure aborts before inner", func(t *testing.T) {
		sim.Fail("UpdateFee", xerrors.New("oracle offline"))
		defer sim.Fail("UpdateFee", nil)

		innerRan := false
		call := &Call{Caller: caller, Method: "submitRecord", Value: types.NewInt(100), Payable: true}
		err := fm.ProtectedCall(ctx, call, func(ctx context.Context, scope *CallScope) error {
			innerRan = true
			return nil
		})
		assert.Error(t, err)
		assert.False(t, innerRan)

		appBalance, err := r.AccountRepo().Balance(ctx, appAddr)
		assert.NoError(t, err)
		assert.True(t, appBalance.IsZero())
	})

	t.Run("fee read failure aborts before inner", func(t *testing.T) {
		sim.Fail("GetFee", xerrors.New("oracle offline"))
		defer sim.Fail("GetFee", nil)

		innerRan := false
		call := &Call{Caller: caller, Method: "submitRecord", Value: types.NewInt(100), Payable: true}
		err := fm.ProtectedCall(ctx, call, func(ctx context.Context, scope *CallScope) error {
			innerRan = true
			return nil
		})
		assert.Error(t, err)
		assert.False(t, innerRan)
	})
}

func TestProtectedCallZeroFee(t *testing.T) {
	ctx := context.Background()
	fm, _, r, contractAddr, appAddr := setupFeeModule(t, types.Zero())
	caller := testhelper.RandAddress()

	var seen types.Int
	call := &Call{Caller: caller, Method: "submitRecord", Value: types.NewInt(100), Payable: true}
	err := fm.ProtectedCall(ctx, call, func(ctx context.Context, scope *CallScope) error {
		seen = scope.ValueAfterFee()
		return nil
	})
	assert.NoError(t, err)

	// nothing to transfer, the full value stays with the application
	assert.Equal(t, types.NewInt(100), seen)

	contractBalance, err := r.AccountRepo().Balance(ctx, contractAddr)
	assert.NoError(t, err)
	assert.True(t, contractBalance.IsZero())

	appBalance, err := r.AccountRepo().Balance(ctx, appAddr)
	assert.NoError(t, err)
	assert.Equal(t, types.NewInt(100), appBalance)
}

func TestProtectedCallNonPayable(t *testing.T) {
	ctx := context.Background()
	fee := types.NewInt(25)
	fm, _, r, _, appAddr := setupFeeModule(t, fee)
	caller := testhelper.RandAddress()

	var seen types.Int
	call := &Call{Caller: caller, Method: "maintain", Value: types.NewInt(100)}
	err := fm.ProtectedCall(ctx, call, func(ctx context.Context, scope *CallScope) error {
		seen = scope.ValueAfterFee()
		return nil
	})
	assert.NoError(t, err)

	// residual is never recorded for non-payable calls
	assert.True(t, seen.IsZero())

	appBalance, err := r.AccountRepo().Balance(ctx, appAddr)
	assert.NoError(t, err)
	assert.Equal(t, types.NewInt(75), appBalance)
}

func TestMulticall(t *testing.T) {
	ctx := context.Background()
	fee := types.NewInt(25)

	t.Run("each sub-call claims the attached value once", func(t *testing.T) {
		fm, _, r, contractAddr, appAddr := setupFeeModule(t, fee)
		caller := testhelper.RandAddress()

		residuals := make([]types.Int, 0, 3)
		inner := func(ctx context.Context, scope *CallScope) error {
			residuals = append(residuals, scope.ValueAfterFee())
			return nil
		}

		call := &Call{Caller: caller, Method: "submitRecords", Value: types.NewInt(100), Payable: true}
		assert.NoError(t, fm.Multicall(ctx, call, []InnerFunc{inner, inner, inner}))

		// every sub-call saw the full attached value net of its own fee
		assert.Equal(t, 3, len(residuals))
		for _, residual := range residuals {
			assert.Equal(t, types.NewInt(75), residual)
		}

		contractBalance, err := r.AccountRepo().Balance(ctx, contractAddr)
		assert.NoError(t, err)
		assert.Equal(t, types.NewInt(75), contractBalance)

		appBalance, err := r.AccountRepo().Balance(ctx, appAddr)
		assert.NoError(t, err)
		assert.Equal(t, types.NewInt(25), appBalance)

		events, err := r.FeeEventRepo().ListFeeEventByCaller(ctx, caller)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(events))
	})

	t.Run("drained balance fails the batch", func(t *testing.T) {
		fm, _, r, contractAddr, appAddr := setupFeeModule(t, fee)
		caller := testhelper.RandAddress()

		ran := 0
		inner := func(ctx context.Context, scope *CallScope) error {
			ran++
			return nil
		}

		// 100 deposited once, 25 claimed per sub-call, the fifth finds 0 < 25
		call := &Call{Caller: caller, Method: "submitRecords", Value: types.NewInt(100), Payable: true}
		err := fm.Multicall(ctx, call, []InnerFunc{inner, inner, inner, inner, inner})

		var insufficient *InsufficientFundsError
		assert.True(t, xerrors.As(err, &insufficient))
		assert.Equal(t, fee, insufficient.Fee)
		assert.True(t, insufficient.Balance.IsZero())
		assert.Equal(t, 4, ran)

		// the whole batch rolled back, completed sub-calls included
		contractBalance, err := r.AccountRepo().Balance(ctx, contractAddr)
		assert.NoError(t, err)
		assert.True(t, contractBalance.IsZero())

		appBalance, err := r.AccountRepo().Balance(ctx, appAddr)
		assert.NoError(t, err)
		assert.True(t, appBalance.IsZero())

		events, err := r.FeeEventRepo().ListFeeEvent(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(events))
	})

	t.Run("sub-call failure rolls back the batch", func(t *testing.T) {
		fm, _, r, contractAddr, appAddr := setupFeeModule(t, fee)
		caller := testhelper.RandAddress()

		ok := func(ctx context.Context, scope *CallScope) error { return nil }
		bad := func(ctx context.Context, scope *CallScope) error { return xerrors.New("sub-call failed") }

		call := &Call{Caller: caller, Method: "submitRecords", Value: types.NewInt(100), Payable: true}
		assert.Error(t, fm.Multicall(ctx, call, []InnerFunc{ok, bad}))

		contractBalance, err := r.AccountRepo().Balance(ctx, contractAddr)
		assert.NoError(t, err)
		assert.True(t, contractBalance.IsZero())

		appBalance, err := r.AccountRepo().Balance(ctx, appAddr)
		assert.NoError(t, err)
		assert.True(t, appBalance.IsZero())
	})
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/fee"
	"github.com/haven1-network/pricer/feecontract"
	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/testhelper"
	"github.com/haven1-network/pricer/types"
)

const testAppAddress = "0x0000000000000000000000000000000000000a11"

func setupRecordService(t *testing.T, feeValue int64) (*RecordService, *testhelper.SimFeeContract, repo.Repo, types.Address) {
	r := testhelper.SetupRepo(t)
	sim := testhelper.NewSimFeeContract(types.NewInt(feeValue))
	ref := feecontract.NewRef(sim, testhelper.RandAddress())
	fm := fee.NewFeeModule(r, log.New())

	rs, err := NewRecordService(context.Background(), r, log.New(), fm, ref, &config.AppConfig{Address: testAppAddress})
	assert.NoError(t, err)
	assert.True(t, sim.InGrace(types.MustParseAddress(testAppAddress)))

	return rs, sim, r, types.MustParseAddress(testAppAddress)
}

func TestSubmitRecord(t *testing.T) {
	ctx := context.Background()
	rs, _, _, appAddr := setupRecordService(t, 25)
	caller := testhelper.RandAddress()

	id, err := rs.SubmitRecord(ctx, caller, "hello haven", types.NewInt(100))
	assert.NoError(t, err)
	assert.False(t, id.IsEmpty())

	record, err := rs.GetRecord(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, caller, record.Creator)
	assert.Equal(t, "hello haven", record.Content)
	assert.True(t, record.Paid.Equals(types.NewInt(75)))

	appBalance, err := rs.Balance(ctx, appAddr)
	assert.NoError(t, err)
	assert.True(t, appBalance.Equals(types.NewInt(75)))

	contractBalance, err := rs.Balance(ctx, rs.contract.Address())
	assert.NoError(t, err)
	assert.True(t, contractBalance.Equals(types.NewInt(25)))

	events, err := rs.ListFeeEventByCaller(ctx, caller)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(events))
	assert.Equal(t, MethodSubmitRecord, events[0].Method)
	assert.True(t, events[0].Fee.Equals(types.NewInt(25)))

	byCreator, err := rs.ListRecordByCreator(ctx, caller)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(byCreator))
}

func TestSubmitRecordAndRefund(t *testing.T) {
	ctx := context.Background()
	rs, _, _, appAddr := setupRecordService(t, 25)
	caller := testhelper.RandAddress()

	id, err := rs.SubmitRecordAndRefund(ctx, caller, "refund me", types.NewInt(100))
	assert.NoError(t, err)

	record, err := rs.GetRecord(ctx, id)
	assert.NoError(t, err)
	assert.True(t, record.Paid.IsZero())

	callerBalance, err := rs.Balance(ctx, caller)
	assert.NoError(t, err)
	assert.True(t, callerBalance.Equals(types.NewInt(75)))

	appBalance, err := rs.Balance(ctx, appAddr)
	assert.NoError(t, err)
	assert.True(t, appBalance.IsZero())

	events, err := rs.ListFeeEventByCaller(ctx, caller)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(events))
	assert.True(t, events[0].Refund.Equals(types.NewInt(75)))
}

func TestSubmitRecordEmptyContent(t *testing.T) {
	ctx := context.Background()
	rs, _, _, appAddr := setupRecordService(t, 25)
	caller := testhelper.RandAddress()

	_, err := rs.SubmitRecord(ctx, caller, "", types.NewInt(100))
	assert.Error(t, err)
	assert.True(t, xerrors.Is(err, ErrEmptyContent))

	records, err := rs.ListRecord(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(records))

	appBalance, err := rs.Balance(ctx, appAddr)
	assert.NoError(t, err)
	assert.True(t, appBalance.IsZero())

	events, err := rs.ListFeeEvent(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(events))
}

func TestSubmitRecordInsufficientValue(t *testing.T) {
	ctx := context.Background()
	rs, _, _, appAddr := setupRecordService(t, 25)
	caller := testhelper.RandAddress()

	_, err := rs.SubmitRecord(ctx, caller, "too cheap", types.NewInt(10))
	assert.Error(t, err)

	var insufficient *fee.InsufficientFundsError
	assert.True(t, xerrors.As(err, &insufficient))
	assert.True(t, insufficient.Fee.Equals(types.NewInt(25)))

	appBalance, err := rs.Balance(ctx, appAddr)
	assert.NoError(t, err)
	assert.True(t, appBalance.IsZero())
}

func TestSubmitRecords(t *testing.T) {
	ctx := context.Background()
	rs, _, _, appAddr := setupRecordService(t, 25)
	caller := testhelper.RandAddress()

	ids, err := rs.SubmitRecords(ctx, caller, []string{"one", "two", "three"}, types.NewInt(100))
	assert.NoError(t, err)
	assert.Equal(t, 3, len(ids))

	for _, id := range ids {
		record, err := rs.GetRecord(ctx, id)
		assert.NoError(t, err)
		assert.True(t, record.Paid.Equals(types.NewInt(75)))
	}

	appBalance, err := rs.Balance(ctx, appAddr)
	assert.NoError(t, err)
	assert.True(t, appBalance.Equals(types.NewInt(25)))

	contractBalance, err := rs.Balance(ctx, rs.contract.Address())
	assert.NoError(t, err)
	assert.True(t, contractBalance.Equals(types.NewInt(75)))

	events, err := rs.ListFeeEventByCaller(ctx, caller)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(events))
	for _, event := range events {
		assert.Equal(t, MethodSubmitRecords, event.Method)
	}
}

func TestSubmitRecordsUnderfunded(t *testing.T) {
	ctx := context.Background()
	rs, _, _, appAddr := setupRecordService(t, 25)
	caller := testhelper.RandAddress()

	contents := []string{"a", "b", "c", "d", "e"}
	_, err := rs.SubmitRecords(ctx, caller, contents, types.NewInt(100))
	assert.Error(t, err)

	var insufficient *fee.InsufficientFundsError
	assert.True(t, xerrors.As(err, &insufficient))

	records, err := rs.ListRecord(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(records))

	appBalance, err := rs.Balance(ctx, appAddr)
	assert.NoError(t, err)
	assert.True(t, appBalance.IsZero())

	_, err = rs.SubmitRecords(ctx, caller, nil, types.NewInt(100))
	assert.Error(t, err)
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	rs, _, _, _ := setupRecordService(t, 25)
	addr := testhelper.RandAddress()

	balance, err := rs.Deposit(ctx, addr, types.NewInt(500))
	assert.NoError(t, err)
	assert.True(t, balance.Equals(types.NewInt(500)))

	balance, err = rs.Deposit(ctx, addr, types.NewInt(100))
	assert.NoError(t, err)
	assert.True(t, balance.Equals(types.NewInt(600)))

	_, err = rs.Deposit(ctx, addr, types.NewInt(-1))
	assert.Error(t, err)
}

func TestFeeState(t *testing.T) {
	ctx := context.Background()
	rs, sim, _, _ := setupRecordService(t, 25)

	sim.SetOracleFee(types.NewInt(40))
	sim.SetNextResetTime(12345)

	state, err := rs.FeeState(ctx)
	assert.NoError(t, err)
	assert.True(t, state.Fee.Equals(types.NewInt(25)))
	assert.True(t, state.OracleFee.Equals(types.NewInt(40)))
	assert.Equal(t, uint64(12345), state.NextResetTime)

	sim.Fail("QueryOracle", xerrors.Errorf("oracle offline"))
	_, err = rs.FeeState(ctx)
	assert.Error(t, err)
}

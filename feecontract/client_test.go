package feecontract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haven1-network/pricer/feecontract"
	"github.com/haven1-network/pricer/testhelper"
	"github.com/haven1-network/pricer/types"
)

func TestFeeContractRPC(t *testing.T) {
	ctx := context.Background()

	sim := testhelper.NewSimFeeContract(types.NewInt(25))
	srv, err := testhelper.MockRPCServer(t, "FeeContract", sim)
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, srv.Stop(ctx))
	}()

	cli, closer, err := feecontract.NewFeeContractRPC(ctx, srv.Addr, "")
	assert.NoError(t, err)
	defer closer()

	fee, err := cli.GetFee(ctx)
	assert.NoError(t, err)
	assert.True(t, fee.Equals(types.NewInt(25)))

	sim.SetOracleFee(types.NewInt(40))
	oracleFee, err := cli.QueryOracle(ctx)
	assert.NoError(t, err)
	assert.True(t, oracleFee.Equals(types.NewInt(40)))

	assert.NoError(t, cli.UpdateFee(ctx))
	assert.Equal(t, 1, sim.UpdateCalls())

	nextReset, err := cli.NextResetTime(ctx)
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), nextReset)

	addr := testhelper.RandAddress()
	assert.NoError(t, cli.SetGraceContract(ctx, addr, true))
	assert.True(t, sim.InGrace(addr))

	sim.Fail("GetFee", errors.New("contract reverted"))
	_, err = cli.GetFee(ctx)
	assert.Error(t, err)
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/haven1-network/pricer/types"
)

var RecordCmds = &cli.Command{
	Name:  "record",
	Usage: "record commands",
	Subcommands: []*cli.Command{
		submitCmd,
		batchSubmitCmd,
		getRecordCmd,
		listRecordCmd,
		depositCmd,
		balanceCmd,
	},
}

var submitCmd = &cli.Command{
	Name:      "submit",
	Usage:     "submit one record through the fee guard",
	ArgsUsage: "content",
	Flags: []cli.Flag{
		callerFlag,
		valueFlag,
		&cli.BoolFlag{
			Name:  "refund",
			Usage: "send everything above the fee back to the caller",
		},
	},
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if ctx.NArg() == 0 {
			return errors.New("must pass record content")
		}
		caller, err := types.ParseAddress(ctx.String("caller"))
		if err != nil {
			return err
		}
		value, err := types.FromString(ctx.String("value"))
		if err != nil {
			return err
		}

		var id types.UUID
		if ctx.Bool("refund") {
			id, err = client.SubmitRecordAndRefund(ctx.Context, caller, ctx.Args().Get(0), value)
		} else {
			id, err = client.SubmitRecord(ctx.Context, caller, ctx.Args().Get(0), value)
		}
		if err != nil {
			return err
		}
		fmt.Println(id.String())
		return nil
	},
}

var batchSubmitCmd = &cli.Command{
	Name:      "batch-submit",
	Usage:     "submit several records in one guarded call, the value is attached once",
	ArgsUsage: "content...",
	Flags: []cli.Flag{
		callerFlag,
		valueFlag,
	},
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if ctx.NArg() == 0 {
			return errors.New("must pass record contents")
		}
		caller, err := types.ParseAddress(ctx.String("caller"))
		if err != nil {
			return err
		}
		value, err := types.FromString(ctx.String("value"))
		if err != nil {
			return err
		}

		ids, err := client.SubmitRecords(ctx.Context, caller, ctx.Args().Slice(), value)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id.String())
		}
		return nil
	},
}

var getRecordCmd = &cli.Command{
	Name:  "get",
	Usage: "get a record by id",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "uuid",
			Required: true,
		},
	},
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		id, err := types.ParseUUID(ctx.String("uuid"))
		if err != nil {
			return err
		}

		record, err := client.GetRecord(ctx.Context, id)
		if err != nil {
			return err
		}
		bytes, err := json.MarshalIndent(record, " ", "\t")
		if err != nil {
			return err
		}
		fmt.Println(string(bytes))
		return nil
	},
}

var listRecordCmd = &cli.Command{
	Name:  "list",
	Usage: "list records, optionally only one creator's",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "creator",
			Usage: "only list records created by this address",
		},
	},
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		var records []*types.Record
		if ctx.IsSet("creator") {
			creator, err := types.ParseAddress(ctx.String("creator"))
			if err != nil {
				return err
			}
			records, err = client.ListRecordByCreator(ctx.Context, creator)
			if err != nil {
				return err
			}
		} else {
			records, err = client.ListRecord(ctx.Context)
			if err != nil {
				return err
			}
		}
		bytes, err := json.MarshalIndent(records, " ", "\t")
		if err != nil {
			return err
		}
		fmt.Println(string(bytes))
		return nil
	},
}

var depositCmd = &cli.Command{
	Name:      "deposit",
	Usage:     "credit native value to an account on the ledger",
	ArgsUsage: "address amount",
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if ctx.NArg() < 2 {
			return errors.New("must pass address and amount")
		}
		addr, err := types.ParseAddress(ctx.Args().Get(0))
		if err != nil {
			return err
		}
		amount, err := types.FromString(ctx.Args().Get(1))
		if err != nil {
			return err
		}

		balance, err := client.Deposit(ctx.Context, addr, amount)
		if err != nil {
			return err
		}
		fmt.Println(balance.String())
		return nil
	},
}

var balanceCmd = &cli.Command{
	Name:      "balance",
	Usage:     "show the ledger balance of an account",
	ArgsUsage: "address",
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if ctx.NArg() == 0 {
			return errors.New("must pass an address")
		}
		addr, err := types.ParseAddress(ctx.Args().Get(0))
		if err != nil {
			return err
		}

		balance, err := client.Balance(ctx.Context, addr)
		if err != nil {
			return err
		}
		fmt.Println(balance.String())
		return nil
	},
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/haven1-network/pricer/types"
)

var FeeCmds = &cli.Command{
	Name:  "fee",
	Usage: "fee commands",
	Subcommands: []*cli.Command{
		feeStateCmd,
		feeEventsCmd,
	},
}

var feeStateCmd = &cli.Command{
	Name:  "state",
	Usage: "show the current fee, the oracle fee and the next reset time",
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		state, err := client.FeeState(ctx.Context)
		if err != nil {
			return err
		}
		bytes, err := json.MarshalIndent(state, " ", "\t")
		if err != nil {
			return err
		}
		fmt.Println(string(bytes))
		return nil
	},
}

var feeEventsCmd = &cli.Command{
	Name:  "events",
	Usage: "list charged fee events",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "caller",
			Usage: "only list events charged to this address",
		},
	},
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		var events []*types.FeeEvent
		if ctx.IsSet("caller") {
			caller, err := types.ParseAddress(ctx.String("caller"))
			if err != nil {
				return err
			}
			events, err = client.ListFeeEventByCaller(ctx.Context, caller)
			if err != nil {
				return err
			}
		} else {
			events, err = client.ListFeeEvent(ctx.Context)
			if err != nil {
				return err
			}
		}
		bytes, err := json.MarshalIndent(events, " ", "\t")
		if err != nil {
			return err
		}
		fmt.Println(string(bytes))
		return nil
	},
}

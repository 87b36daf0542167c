package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/haven1-network/pricer/types"
)

var QuoteCmds = &cli.Command{
	Name:  "quote",
	Usage: "quote commands",
	Subcommands: []*cli.Command{
		priceCmd,
		premiumCmd,
		toWeiCmd,
		toUSDCmd,
		capabilitiesCmd,
	},
}

var priceCmd = &cli.Command{
	Name:      "price",
	Usage:     "quote the price of registering a name",
	ArgsUsage: "name",
	Flags: []cli.Flag{
		durationFlag,
		expiresFlag,
	},
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if ctx.NArg() == 0 {
			return errors.New("must pass a name")
		}

		quote, err := client.Quote(ctx.Context, ctx.Args().Get(0), ctx.Uint64("expires"), ctx.Uint64("duration"))
		if err != nil {
			return err
		}
		bytes, err := json.MarshalIndent(quote, " ", "\t")
		if err != nil {
			return err
		}
		fmt.Println(string(bytes))
		return nil
	},
}

var premiumCmd = &cli.Command{
	Name:      "premium",
	Usage:     "show only the premium part of a quote",
	ArgsUsage: "name",
	Flags: []cli.Flag{
		durationFlag,
		expiresFlag,
	},
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if ctx.NArg() == 0 {
			return errors.New("must pass a name")
		}

		premium, err := client.Premium(ctx.Context, ctx.Args().Get(0), ctx.Uint64("expires"), ctx.Uint64("duration"))
		if err != nil {
			return err
		}
		fmt.Println(premium.String())
		return nil
	},
}

var toWeiCmd = &cli.Command{
	Name:      "to-wei",
	Usage:     "convert an atto-USD amount to native wei at the current rate",
	ArgsUsage: "amount",
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if ctx.NArg() == 0 {
			return errors.New("must pass an amount")
		}
		amount, err := types.FromString(ctx.Args().Get(0))
		if err != nil {
			return err
		}

		wei, err := client.AttoUSDToWei(ctx.Context, amount)
		if err != nil {
			return err
		}
		fmt.Println(wei.String())
		return nil
	},
}

var toUSDCmd = &cli.Command{
	Name:      "to-usd",
	Usage:     "convert a native wei amount to atto-USD at the current rate",
	ArgsUsage: "amount",
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if ctx.NArg() == 0 {
			return errors.New("must pass an amount")
		}
		amount, err := types.FromString(ctx.Args().Get(0))
		if err != nil {
			return err
		}

		usd, err := client.WeiToAttoUSD(ctx.Context, amount)
		if err != nil {
			return err
		}
		fmt.Println(usd.String())
		return nil
	},
}

var capabilitiesCmd = &cli.Command{
	Name:  "capabilities",
	Usage: "list the oracle interfaces the service answers to",
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		caps, err := client.Capabilities(ctx.Context)
		if err != nil {
			return err
		}
		for _, c := range caps {
			fmt.Println(c)
		}
		return nil
	},
}

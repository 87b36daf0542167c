package cli

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

var RateCmds = &cli.Command{
	Name:  "rate",
	Usage: "rate feed commands",
	Subcommands: []*cli.Command{
		latestRateCmd,
		refreshRateCmd,
		listSnapshotCmd,
	},
}

var latestRateCmd = &cli.Command{
	Name:  "latest",
	Usage: "show the native/USD rate quotes are served with",
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		rate, err := client.LatestRate(ctx.Context)
		if err != nil {
			return err
		}
		fmt.Println(rate.String())
		return nil
	},
}

var refreshRateCmd = &cli.Command{
	Name:  "refresh",
	Usage: "force one poll of the rate feed",
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		rate, err := client.RefreshRate(ctx.Context)
		if err != nil {
			return err
		}
		fmt.Println(rate.String())
		return nil
	},
}

var listSnapshotCmd = &cli.Command{
	Name:  "snapshots",
	Usage: "list persisted rate readings, newest first",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "limit",
			Usage: "max snapshots to return",
			Value: 20,
		},
	},
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		snapshots, err := client.ListRateSnapshot(ctx.Context, ctx.Int("limit"))
		if err != nil {
			return err
		}
		bytes, err := json.MarshalIndent(snapshots, " ", "\t")
		if err != nil {
			return err
		}
		fmt.Println(string(bytes))
		return nil
	},
}

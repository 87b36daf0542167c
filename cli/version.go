package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/haven1-network/pricer/version"
)

var VersionCmd = &cli.Command{
	Name:  "version",
	Usage: "Show pricer version information",
	Action: func(ctx *cli.Context) error {
		client, closer, err := getAPI(ctx)
		if err != nil {
			fmt.Println("local:", version.GitCommit)
			return nil
		}
		defer closer()

		remote, err := client.Version(ctx.Context)
		if err != nil {
			return err
		}
		fmt.Println("local:", version.GitCommit)
		fmt.Println("remote:", remote)
		return nil
	},
}

package cli

import (
	"github.com/urfave/cli/v2"
)

var callerFlag = &cli.StringFlag{
	Name:     "caller",
	Usage:    "account the call is made for, 0x hex address",
	Required: true,
}

var valueFlag = &cli.StringFlag{
	Name:  "value",
	Usage: "native value attached to the call, in wei",
	Value: "0",
}

var durationFlag = &cli.Uint64Flag{
	Name:  "duration",
	Usage: "registration duration in seconds",
	Value: 31536000,
}

var expiresFlag = &cli.Uint64Flag{
	Name:  "expires",
	Usage: "unix time the name expired, 0 for never registered",
}

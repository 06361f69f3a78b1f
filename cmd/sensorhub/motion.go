package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/sensorhub/cmd/sensorhub/console"
)

var motionCmd = cli.Command{
	Name:  "motion",
	Usage: "PIR motion sensor",
	Subcommands: []*cli.Command{
		&motionCheckCmd,
	},
}

var motionCheckCmd = cli.Command{
	Name:  "check",
	Flags: hubFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		h, cleanup, err := openHub(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer cleanup()

		motion, err := h.MotionDetected(ctx)
		if err != nil {
			return console.Exit(1, "error checking motion: %s", console.Red(err))
		}
		if motion {
			console.Printf("%s motion detected: %s\n", console.PictoMotion, console.Yellow(motion))
		} else {
			console.Printf("%s motion detected: %s\n", console.PictoMotion, console.Green(motion))
		}
		return nil
	},
}

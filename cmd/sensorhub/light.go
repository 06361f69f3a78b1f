package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/sensorhub/cmd/sensorhub/console"
	"github.com/mklimuk/sensorhub/hub"
)

var lightCmd = cli.Command{
	Name:  "light",
	Usage: "ambient light sensor",
	Subcommands: []*cli.Command{
		&lightReadCmd,
	},
}

var lightReadCmd = cli.Command{
	Name:    "read",
	Aliases: []string{"rd"},
	Flags:   hubFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		h, cleanup, err := openHub(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer cleanup()

		lux, err := h.GetBrightness(ctx)
		if errors.Is(err, hub.ErrLightSensorFailure) {
			return console.Exit(1, "light sensor hardware error: %s", console.Red(err))
		}
		if err != nil {
			return console.Exit(1, "error getting light sensor read: %s", console.Red(err))
		}
		if lux == hub.Unavailable {
			console.Printf("%s %s\n", console.PictoSun, console.Yellow("out of range"))
			return nil
		}
		console.Printf("%s %s lux\n", console.PictoSun, console.White(lux))
		return nil
	},
}

package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/sensorhub/cmd/sensorhub/console"
	"github.com/mklimuk/sensorhub/hub"
)

var temperatureCmd = cli.Command{
	Name:    "temperature",
	Aliases: []string{"temp"},
	Usage:   "read on-board or off-board probe temperature",
	Flags: append(hubFlags(),
		&cli.BoolFlag{
			Name:  "off-board",
			Usage: "read the external probe instead of the on-board sensor",
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		h, cleanup, err := openHub(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer cleanup()

		var temp int
		if c.Bool("off-board") {
			temp, err = h.GetOffBoardTemperature(ctx)
			if errors.Is(err, hub.ErrTemperatureSensorMissing) {
				return console.Exit(1, "probe not connected: %s", console.Red(err))
			}
		} else {
			temp, err = h.GetTemperature(ctx)
		}
		if err != nil {
			return console.Exit(1, "error getting temperature read: %s", console.Red(err))
		}
		if temp == hub.Unavailable {
			console.Printf("%s  %s\n", console.PictoThermometer, console.Yellow("n/a"))
			return nil
		}
		console.Printf("%s  %s°C\n", console.PictoThermometer, console.White(temp))
		return nil
	},
}

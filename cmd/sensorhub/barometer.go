package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/sensorhub/cmd/sensorhub/console"
	"github.com/mklimuk/sensorhub/hub"
)

var barometerCmd = cli.Command{
	Name:    "barometer",
	Aliases: []string{"baro"},
	Usage:   "barometric pressure sensor",
	Subcommands: []*cli.Command{
		&barometerReadCmd,
	},
}

var barometerReadCmd = cli.Command{
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

		temp, err := h.GetBarometerTemperature(ctx)
		if errors.Is(err, hub.ErrBarometerFailure) {
			return console.Exit(1, "barometric sensor error: %s", console.Red(err))
		}
		if err != nil {
			return console.Exit(1, "error getting barometer read: %s", console.Red(err))
		}
		pressure, err := h.GetBarometerPressure(ctx)
		if err != nil {
			return console.Exit(1, "error getting barometer read: %s", console.Red(err))
		}
		console.Printf("%s  %s°C\n%s %s hPa\n", console.PictoThermometer, console.White(temp), console.PictoPressure, console.White(pressure))
		return nil
	},
}

package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/sensorhub/cmd/sensorhub/console"
	"github.com/mklimuk/sensorhub/hub"
)

var humidityCmd = cli.Command{
	Name:    "humidity",
	Aliases: []string{"hum"},
	Usage:   "read on-board relative humidity",
	Flags:   hubFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		h, cleanup, err := openHub(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer cleanup()

		hum, err := h.GetHumidity(ctx)
		if err != nil {
			return console.Exit(1, "error getting humidity read: %s", console.Red(err))
		}
		if hum == hub.Unavailable {
			console.Printf("%s %s\n", console.PictoHumidity, console.Yellow("n/a"))
			return nil
		}
		console.Printf("%s %s%%\n", console.PictoHumidity, console.White(hum))
		return nil
	},
}

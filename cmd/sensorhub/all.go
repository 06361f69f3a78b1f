package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/sensorhub/cmd/sensorhub/console"
	"github.com/mklimuk/sensorhub/hub"
)

var allCmd = cli.Command{
	Name:  "all",
	Usage: "read every sensor and print a summary",
	Flags: hubFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		h, cleanup, err := openHub(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer cleanup()

		w := tabwriter.NewWriter(os.Stdout, 24, 0, 1, ' ', 0)
		_, _ = fmt.Fprintf(w, "SENSOR\tVALUE\tUNIT\n")

		printInt(w, "off-board temperature", "°C", func() (int, error) { return h.GetOffBoardTemperature(ctx) })
		printInt(w, "on-board temperature", "°C", func() (int, error) { return h.GetTemperature(ctx) })
		printInt(w, "humidity", "%", func() (int, error) { return h.GetHumidity(ctx) })
		printInt(w, "brightness", "lux", func() (int, error) { return h.GetBrightness(ctx) })

		motion, err := h.MotionDetected(ctx)
		if err != nil {
			_, _ = fmt.Fprintf(w, "motion\t%s\t\n", console.Red(err))
		} else {
			_, _ = fmt.Fprintf(w, "motion\t%t\t\n", motion)
		}

		printInt(w, "barometer temperature", "°C", func() (int, error) { return h.GetBarometerTemperature(ctx) })

		pressure, err := h.GetBarometerPressure(ctx)
		if err != nil {
			_, _ = fmt.Fprintf(w, "barometer pressure\t%s\t\n", console.Red(err))
		} else {
			_, _ = fmt.Fprintf(w, "barometer pressure\t%s\thPa\n", strconv.FormatFloat(pressure, 'f', 2, 64))
		}

		return w.Flush()
	},
}

// printInt prints one reading row; a sensor failure is reported inline so
// the remaining sensors still get read.
func printInt(w *tabwriter.Writer, name, unit string, read func() (int, error)) {
	value, err := read()
	switch {
	case err != nil:
		_, _ = fmt.Fprintf(w, "%s\t%s\t\n", name, console.Red(err))
	case value == hub.Unavailable:
		_, _ = fmt.Fprintf(w, "%s\t%s\t\n", name, console.Yellow("n/a"))
	default:
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n", name, value, unit)
	}
}

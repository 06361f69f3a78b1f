package main

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/sensorhub/cmd/sensorhub/console"
	"github.com/mklimuk/sensorhub/hub"
)

var shellCmd = cli.Command{
	Name:  "shell",
	Usage: "interactive register read loop",
	Flags: hubFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		h, cleanup, err := openHub(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer cleanup()

		console.Info("type a sensor name (temp, offboard, hum, light, motion, baro) or exit")
		for {
			line, err := console.Prompt("hub> ")
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return console.Exit(1, "prompt error: %s", console.Red(err))
			}
			if done := dispatch(ctx, h, strings.TrimSpace(line)); done {
				return nil
			}
		}
	},
}

func dispatch(ctx context.Context, h *hub.SensorHub, command string) bool {
	start := time.Now()
	switch command {
	case "":
	case "exit", "quit", "q":
		return true
	case "help":
		console.Info("temp, offboard, hum, light, motion, baro, exit")
	case "temp":
		printReading(h.GetTemperature(ctx))(console.PictoThermometer, "°C")
	case "offboard":
		printReading(h.GetOffBoardTemperature(ctx))(console.PictoThermometer, "°C")
	case "hum":
		printReading(h.GetHumidity(ctx))(console.PictoHumidity, "%")
	case "light":
		printReading(h.GetBrightness(ctx))(console.PictoSun, " lux")
	case "motion":
		motion, err := h.MotionDetected(ctx)
		if err != nil {
			console.Errorf("read failed: %s", console.Red(err))
			break
		}
		console.Printf("%s %s\n", console.PictoMotion, console.White(motion))
	case "baro":
		temp, err := h.GetBarometerTemperature(ctx)
		if err != nil {
			console.Errorf("read failed: %s", console.Red(err))
			break
		}
		pressure, err := h.GetBarometerPressure(ctx)
		if err != nil {
			console.Errorf("read failed: %s", console.Red(err))
			break
		}
		console.Printf("%s  %s°C %s %s hPa\n", console.PictoThermometer, console.White(temp), console.PictoPressure, console.White(pressure))
	default:
		console.Warnf("unknown command %q, try help", command)
	}
	if console.IsVerbose(ctx) {
		console.Infof("took %s", time.Since(start))
	}
	return false
}

// printReading returns a closure so each shell command keeps its own
// pictogram and unit while sharing sentinel and error handling.
func printReading(value int, err error) func(picto, unit string) {
	return func(picto, unit string) {
		if err != nil {
			console.Errorf("read failed: %s", console.Red(err))
			return
		}
		if value == hub.Unavailable {
			console.Printf("%s %s\n", picto, console.Yellow("n/a"))
			return
		}
		console.Printf("%s %s%s\n", picto, console.White(value), unit)
	}
}

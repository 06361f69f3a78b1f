package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/sensorhub"
	"github.com/mklimuk/sensorhub/adapter"
	"github.com/mklimuk/sensorhub/config"
	"github.com/mklimuk/sensorhub/hub"
	"github.com/mklimuk/sensorhub/i2c"
)

// hubFlags returns the transport selection flags shared by all read commands.
func hubFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "adapter",
			Aliases: []string{"a"},
			Usage:   "bus transport: generic, raspi or mcp2221",
		},
		&cli.StringFlag{
			Name:    "device",
			Aliases: []string{"d"},
			Usage:   "i2c device path for the generic adapter",
		},
		&cli.IntFlag{
			Name:  "bus",
			Usage: "bus number for the raspi adapter",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "yaml config file",
		},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	}
}

// openHub builds the hub on the transport selected by config and flags.
// The returned cleanup releases whatever the transport holds.
func openHub(c *cli.Context) (*hub.SensorHub, func(), error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if c.IsSet("adapter") {
		cfg.Adapter = c.String("adapter")
	}
	if c.IsSet("device") {
		cfg.Device = c.String("device")
	}
	if c.IsSet("bus") {
		cfg.Bus = c.Int("bus")
	}

	var transport sensorhub.I2CBus
	cleanup := func() {}
	switch cfg.Adapter {
	case "mcp2221":
		a := adapter.NewMCP2221()
		err = a.Init()
		if err != nil {
			return nil, nil, fmt.Errorf("adapter initialization error: %w", err)
		}
		transport = a
	case "raspi":
		bus, err := adapter.NewRaspiBus(cfg.Bus)
		if err != nil {
			return nil, nil, fmt.Errorf("adapter initialization error: %w", err)
		}
		transport = bus
		cleanup = func() { _ = bus.Release(context.Background()) }
	case "generic":
		bus, err := i2c.NewGenericBus(cfg.Device)
		if err != nil {
			return nil, nil, fmt.Errorf("adapter initialization error: %w", err)
		}
		transport = bus
		cleanup = func() { _ = bus.Close() }
	default:
		return nil, nil, fmt.Errorf("unknown adapter %q", cfg.Adapter)
	}
	return hub.New(transport, hub.WithAddress(cfg.Address)), cleanup, nil
}

package hub

import (
	"fmt"

	"github.com/mklimuk/sensorhub/i2c"
)

// Open connects to the hub on the default Linux bus at the default address.
// The returned hub owns the bus handle; Close releases it. Pass a pre-bound
// transport to New instead when the bus is shared or non-standard.
func Open(opts ...Option) (*SensorHub, error) {
	bus, err := i2c.NewGenericBus(DefaultDevice)
	if err != nil {
		return nil, fmt.Errorf("hub: could not open %s: %w", DefaultDevice, err)
	}
	h := New(bus, opts...)
	h.closer = bus
	return h, nil
}

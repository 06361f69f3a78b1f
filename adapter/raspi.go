package adapter

import (
	"context"
	"fmt"
	"sync"

	"gobot.io/x/gobot/v2/drivers/i2c"
	"gobot.io/x/gobot/v2/platforms/raspi"

	"github.com/mklimuk/sensorhub"
)

var _ sensorhub.I2CBus = &RaspiBus{}

// RaspiBus implements sensorhub.I2CBus on top of the gobot Raspberry Pi
// adaptor. Connections are opened lazily per device address and kept for
// the lifetime of the bus.
type RaspiBus struct {
	mx      sync.Mutex
	adaptor *raspi.Adaptor
	bus     int
	conns   map[byte]i2c.Connection
}

// NewRaspiBus connects the gobot adaptor on the given bus number. Pass a
// negative number to use the adaptor's default bus.
func NewRaspiBus(busNum int) (*RaspiBus, error) {
	adaptor := raspi.NewAdaptor()
	err := adaptor.Connect()
	if err != nil {
		return nil, fmt.Errorf("adaptor connect error: %w", err)
	}
	if busNum < 0 {
		busNum = adaptor.DefaultI2cBus()
	}
	return &RaspiBus{
		adaptor: adaptor,
		bus:     busNum,
		conns:   make(map[byte]i2c.Connection),
	}, nil
}

func (b *RaspiBus) connection(address byte) (i2c.Connection, error) {
	if conn, ok := b.conns[address]; ok {
		return conn, nil
	}
	conn, err := b.adaptor.GetI2cConnection(int(address), b.bus)
	if err != nil {
		return nil, fmt.Errorf("could not get connection to %x on bus %d: %w", address, b.bus, err)
	}
	b.conns[address] = conn
	return conn, nil
}

func (b *RaspiBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	b.mx.Lock()
	defer b.mx.Unlock()
	conn, err := b.connection(address)
	if err != nil {
		return err
	}
	n, err := conn.Read(buffer)
	if err != nil {
		return fmt.Errorf("could not read from %x: %w", address, err)
	}
	if n != len(buffer) {
		return fmt.Errorf("short read from %x: %d", address, n)
	}
	return nil
}

func (b *RaspiBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	b.mx.Lock()
	defer b.mx.Unlock()
	conn, err := b.connection(address)
	if err != nil {
		return err
	}
	n, err := conn.Write(buffer)
	if err != nil {
		return fmt.Errorf("could not write to %x: %w", address, err)
	}
	if n != len(buffer) {
		return fmt.Errorf("short write to %x: %d", address, n)
	}
	return nil
}

func (b *RaspiBus) Release(ctx context.Context) error {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.conns = make(map[byte]i2c.Connection)
	return b.adaptor.Finalize()
}

package sensorhub

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

// AddressableReader reads bytes from a device at the given 7-bit bus address.
type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

// AddressableWriter writes bytes to a device at the given 7-bit bus address.
type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

// I2CBus is the transport contract the hub driver is built against.
// Production implementations live in the i2c and adapter packages;
// tests substitute mocks.
type I2CBus interface {
	AddressableReader
	AddressableWriter
}

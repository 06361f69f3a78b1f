package hub

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mklimuk/sensorhub"
)

// The DockerPi SensorHub (EP-0106) answers at a fixed 7-bit address
// and exposes all of its measurements as byte-wide registers.
const DefaultAddress = 0x17

// DefaultDevice is the Linux bus the HAT sits on (bus 1 on a Raspberry Pi).
const DefaultDevice = "/dev/i2c-1"

// Register map (per EP-0106 documentation).
const (
	regOffBoardTemperature  byte = 0x01
	regLightLow             byte = 0x02
	regLightHigh            byte = 0x03
	regStatus               byte = 0x04
	regOnBoardTemperature   byte = 0x05
	regOnBoardHumidity      byte = 0x06
	regOnBoardStale         byte = 0x07
	regBarometerTemperature byte = 0x08
	regBarometerPressLow    byte = 0x09
	regBarometerPressMid    byte = 0x0A
	regBarometerPressHigh   byte = 0x0B
	regBarometerStatus      byte = 0x0C
	regMotion               byte = 0x0D
)

// Status register bits. Bits are independent and may combine arbitrarily.
const (
	statusTemperatureOutOfRange  byte = 1 << 0
	statusTemperatureMissing     byte = 1 << 1
	statusBrightnessOutOfRange   byte = 1 << 2
	statusBrightnessSensorFailed byte = 1 << 3
)

// Unavailable is returned (with a nil error) when a reading is out of the
// sensor's measurable range or not refreshed yet. It is a routine condition,
// not a failure; callers should test for it before using the value.
const Unavailable = -1

var ErrTemperatureSensorMissing = errors.New("hub: off-board temperature sensor missing")
var ErrLightSensorFailure = errors.New("hub: light sensor hardware failure")
var ErrBarometerFailure = errors.New("hub: barometric sensor error")

// SensorHub reads the EP-0106 expansion board over an injected I2C
// transport. It keeps no state besides the transport handle and a reused
// read buffer; it is not safe for concurrent use. The bus is a serial
// resource and callers must serialize access themselves.
type SensorHub struct {
	transport sensorhub.I2CBus
	address   byte
	buf       []byte
	// set only when the hub opened the transport itself (see Open)
	closer io.Closer
}

type Config struct {
	Address byte
}

type Option func(*Config)

// WithAddress overrides the device address (default 0x17).
func WithAddress(address byte) Option {
	return func(c *Config) {
		c.Address = address
	}
}

func New(transport sensorhub.I2CBus, opts ...Option) *SensorHub {
	config := &Config{
		Address: DefaultAddress,
	}
	for _, opt := range opts {
		opt(config)
	}
	return &SensorHub{
		transport: transport,
		address:   config.Address,
		buf:       make([]byte, 1),
	}
}

// Close releases the underlying transport and, if the hub opened the bus
// itself, closes it.
func (h *SensorHub) Close(ctx context.Context) error {
	err := h.transport.Release(ctx)
	if err != nil {
		return err
	}
	if h.closer != nil {
		return h.closer.Close()
	}
	return nil
}

// GetOffBoardTemperature returns the external probe temperature in Celsius,
// or Unavailable if the reading is out of the probe's range. It fails with
// ErrTemperatureSensorMissing when the probe is not connected; out-of-range
// wins when both status bits are set.
func (h *SensorHub) GetOffBoardTemperature(ctx context.Context) (int, error) {
	status, err := h.readRegister(ctx, regStatus)
	if err != nil {
		return 0, err
	}
	if status&statusTemperatureOutOfRange != 0 {
		return Unavailable, nil
	}
	if status&statusTemperatureMissing != 0 {
		return 0, ErrTemperatureSensorMissing
	}
	temp, err := h.readRegister(ctx, regOffBoardTemperature)
	if err != nil {
		return 0, err
	}
	return int(temp), nil
}

// GetTemperature returns the on-board temperature in Celsius, or Unavailable
// when the board has not refreshed its data yet. Staleness is frequent and
// recoverable, so it is never reported as an error.
func (h *SensorHub) GetTemperature(ctx context.Context) (int, error) {
	return h.readOnBoard(ctx, regOnBoardTemperature)
}

// GetHumidity returns the on-board relative humidity in percent, or
// Unavailable when the data is stale.
func (h *SensorHub) GetHumidity(ctx context.Context) (int, error) {
	return h.readOnBoard(ctx, regOnBoardHumidity)
}

func (h *SensorHub) readOnBoard(ctx context.Context, reg byte) (int, error) {
	stale, err := h.readRegister(ctx, regOnBoardStale)
	if err != nil {
		return 0, err
	}
	if stale != 0 {
		return Unavailable, nil
	}
	value, err := h.readRegister(ctx, reg)
	if err != nil {
		return 0, err
	}
	return int(value), nil
}

// MotionDetected reports whether the PIR sensor registered motion recently.
// The register is defined to hold 1 on motion; any other value reads as none.
func (h *SensorHub) MotionDetected(ctx context.Context) (bool, error) {
	motion, err := h.readRegister(ctx, regMotion)
	if err != nil {
		return false, err
	}
	return motion == 1, nil
}

// GetBrightness returns the ambient light level in Lux, or Unavailable if
// the reading is out of the sensor's range. It fails with
// ErrLightSensorFailure on a hardware fault; out-of-range wins when both
// status bits are set.
func (h *SensorHub) GetBrightness(ctx context.Context) (int, error) {
	status, err := h.readRegister(ctx, regStatus)
	if err != nil {
		return 0, err
	}
	if status&statusBrightnessOutOfRange != 0 {
		return Unavailable, nil
	}
	if status&statusBrightnessSensorFailed != 0 {
		return 0, ErrLightSensorFailure
	}
	high, err := h.readRegister(ctx, regLightHigh)
	if err != nil {
		return 0, err
	}
	low, err := h.readRegister(ctx, regLightLow)
	if err != nil {
		return 0, err
	}
	return int(high)<<8 | int(low), nil
}

// GetBarometerTemperature returns the barometer die temperature in Celsius.
// The barometer has no sentinel path: any nonzero status is a hard failure.
func (h *SensorHub) GetBarometerTemperature(ctx context.Context) (int, error) {
	if err := h.checkBarometer(ctx); err != nil {
		return 0, err
	}
	temp, err := h.readRegister(ctx, regBarometerTemperature)
	if err != nil {
		return 0, err
	}
	return int(temp), nil
}

// GetBarometerPressure returns the barometric pressure in hectopascals,
// rounded to two decimal places. The raw 24-bit register value is pascals,
// composed low byte first.
func (h *SensorHub) GetBarometerPressure(ctx context.Context) (float64, error) {
	if err := h.checkBarometer(ctx); err != nil {
		return 0, err
	}
	low, err := h.readRegister(ctx, regBarometerPressLow)
	if err != nil {
		return 0, err
	}
	mid, err := h.readRegister(ctx, regBarometerPressMid)
	if err != nil {
		return 0, err
	}
	high, err := h.readRegister(ctx, regBarometerPressHigh)
	if err != nil {
		return 0, err
	}
	pascals := int(low) | int(mid)<<8 | int(high)<<16
	// pascals is a whole number, so dividing by 100 is already exact
	// to two decimal places
	return float64(pascals) / 100, nil
}

func (h *SensorHub) checkBarometer(ctx context.Context) error {
	status, err := h.readRegister(ctx, regBarometerStatus)
	if err != nil {
		return err
	}
	if status != 0 {
		return fmt.Errorf("%w: status %#02x", ErrBarometerFailure, status)
	}
	return nil
}

// readRegister performs a single smbus-style byte read: select the register,
// then read one byte back.
func (h *SensorHub) readRegister(ctx context.Context, reg byte) (byte, error) {
	err := h.transport.WriteToAddr(ctx, h.address, []byte{reg})
	if err != nil {
		return 0, fmt.Errorf("hub: could not select register %#02x: %w", reg, err)
	}
	err = h.transport.ReadFromAddr(ctx, h.address, h.buf)
	if err != nil {
		return 0, fmt.Errorf("hub: could not read register %#02x: %w", reg, err)
	}
	return h.buf[0], nil
}

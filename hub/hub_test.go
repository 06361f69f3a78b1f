package hub

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockI2CBus is a mock implementation of sensorhub.I2CBus using testify/mock.
// It records the register addresses selected on the wire so tests can assert
// both the number and the order of register reads.
type MockI2CBus struct {
	mock.Mock
	selected []byte
}

func (m *MockI2CBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	if len(buffer) == 1 {
		m.selected = append(m.selected, buffer[0])
	}
	args := m.Called(ctx, address, buffer)
	return args.Error(0)
}

func (m *MockI2CBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	if args.Get(0) != nil {
		if data, ok := args.Get(0).([]byte); ok && len(data) <= len(buffer) {
			copy(buffer, data)
		}
	}
	return args.Error(1)
}

func (m *MockI2CBus) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// expectRegister sets up one smbus-style register read returning value.
func expectRegister(bus *MockI2CBus, reg byte, value byte) {
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{reg}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return([]byte{value}, nil).Once()
}

func TestSensorHub_OffBoardTemperature_OutOfRange(t *testing.T) {
	// out of range wins regardless of any other status bit
	for _, status := range []byte{0b0001, 0b0011, 0b0101, 0b1101, 0b1111} {
		t.Run(fmt.Sprintf("status %#04b", status), func(t *testing.T) {
			bus := new(MockI2CBus)
			expectRegister(bus, regStatus, status)

			temp, err := New(bus).GetOffBoardTemperature(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, Unavailable, temp)
			assert.Equal(t, []byte{regStatus}, bus.selected, "only the status register should be read")
			bus.AssertExpectations(t)
		})
	}
}

func TestSensorHub_OffBoardTemperature_SensorMissing(t *testing.T) {
	for _, status := range []byte{0b0010, 0b0110, 0b1010, 0b1110} {
		t.Run(fmt.Sprintf("status %#04b", status), func(t *testing.T) {
			bus := new(MockI2CBus)
			expectRegister(bus, regStatus, status)

			_, err := New(bus).GetOffBoardTemperature(context.Background())

			assert.ErrorIs(t, err, ErrTemperatureSensorMissing)
			assert.Equal(t, []byte{regStatus}, bus.selected)
			bus.AssertExpectations(t)
		})
	}
}

func TestSensorHub_OffBoardTemperature_Reads(t *testing.T) {
	// brightness bits must not affect the temperature path
	for _, status := range []byte{0b0000, 0b0100, 0b1000, 0b1100} {
		t.Run(fmt.Sprintf("status %#04b", status), func(t *testing.T) {
			bus := new(MockI2CBus)
			expectRegister(bus, regStatus, status)
			expectRegister(bus, regOffBoardTemperature, 25)

			temp, err := New(bus).GetOffBoardTemperature(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, 25, temp)
			assert.Equal(t, []byte{regStatus, regOffBoardTemperature}, bus.selected)
			bus.AssertExpectations(t)
		})
	}
}

func TestSensorHub_OnBoard_StaleData(t *testing.T) {
	tests := []struct {
		name string
		read func(*SensorHub, context.Context) (int, error)
	}{
		{"temperature", (*SensorHub).GetTemperature},
		{"humidity", (*SensorHub).GetHumidity},
	}
	for _, tt := range tests {
		for _, stale := range []byte{1, 2, 0xFF} {
			t.Run(fmt.Sprintf("%s stale %d", tt.name, stale), func(t *testing.T) {
				bus := new(MockI2CBus)
				expectRegister(bus, regOnBoardStale, stale)

				value, err := tt.read(New(bus), context.Background())

				assert.NoError(t, err)
				assert.Equal(t, Unavailable, value)
				assert.Equal(t, []byte{regOnBoardStale}, bus.selected, "only the staleness flag should be read")
				bus.AssertExpectations(t)
			})
		}
	}
}

func TestSensorHub_OnBoard_FreshData(t *testing.T) {
	tests := []struct {
		name     string
		reg      byte
		value    byte
		expected int
		read     func(*SensorHub, context.Context) (int, error)
	}{
		{"temperature", regOnBoardTemperature, 22, 22, (*SensorHub).GetTemperature},
		{"humidity", regOnBoardHumidity, 58, 58, (*SensorHub).GetHumidity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := new(MockI2CBus)
			expectRegister(bus, regOnBoardStale, 0)
			expectRegister(bus, tt.reg, tt.value)

			value, err := tt.read(New(bus), context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, value)
			assert.Equal(t, []byte{regOnBoardStale, tt.reg}, bus.selected)
			bus.AssertExpectations(t)
		})
	}
}

func TestSensorHub_MotionDetected(t *testing.T) {
	tests := []struct {
		value    byte
		expected bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{0xFF, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("register %d", tt.value), func(t *testing.T) {
			bus := new(MockI2CBus)
			expectRegister(bus, regMotion, tt.value)

			motion, err := New(bus).MotionDetected(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, motion)
			bus.AssertExpectations(t)
		})
	}
}

func TestSensorHub_Brightness_OutOfRange(t *testing.T) {
	// out of range wins over the hardware failure bit
	for _, status := range []byte{0b0100, 0b1100, 0b0111} {
		t.Run(fmt.Sprintf("status %#04b", status), func(t *testing.T) {
			bus := new(MockI2CBus)
			expectRegister(bus, regStatus, status)

			lux, err := New(bus).GetBrightness(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, Unavailable, lux)
			assert.Equal(t, []byte{regStatus}, bus.selected)
			bus.AssertExpectations(t)
		})
	}
}

func TestSensorHub_Brightness_HardwareFailure(t *testing.T) {
	for _, status := range []byte{0b1000, 0b1011} {
		t.Run(fmt.Sprintf("status %#04b", status), func(t *testing.T) {
			bus := new(MockI2CBus)
			expectRegister(bus, regStatus, status)

			_, err := New(bus).GetBrightness(context.Background())

			assert.ErrorIs(t, err, ErrLightSensorFailure)
			assert.Equal(t, []byte{regStatus}, bus.selected)
			bus.AssertExpectations(t)
		})
	}
}

func TestSensorHub_Brightness_Composition(t *testing.T) {
	tests := []struct {
		name      string
		status    byte
		high, low byte
		expected  int
	}{
		{"datasheet example", 0b0000, 1, 39, 295},
		{"zero", 0b0000, 0, 0, 0},
		{"max", 0b0000, 0xFF, 0xFF, 65535},
		// temperature fault bits are not the light sensor's business
		{"temperature bits set", 0b0011, 1, 39, 295},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := new(MockI2CBus)
			expectRegister(bus, regStatus, tt.status)
			expectRegister(bus, regLightHigh, tt.high)
			expectRegister(bus, regLightLow, tt.low)

			lux, err := New(bus).GetBrightness(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, lux)
			assert.Equal(t, []byte{regStatus, regLightHigh, regLightLow}, bus.selected)
			bus.AssertExpectations(t)
		})
	}
}

func TestSensorHub_BarometerTemperature(t *testing.T) {
	bus := new(MockI2CBus)
	expectRegister(bus, regBarometerStatus, 0)
	expectRegister(bus, regBarometerTemperature, 19)

	temp, err := New(bus).GetBarometerTemperature(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 19, temp)
	assert.Equal(t, []byte{regBarometerStatus, regBarometerTemperature}, bus.selected)
	bus.AssertExpectations(t)
}

func TestSensorHub_Barometer_AnyNonZeroStatusFails(t *testing.T) {
	for _, status := range []byte{1, 2, 0x55, 0xFF} {
		t.Run(fmt.Sprintf("status %#02x", status), func(t *testing.T) {
			bus := new(MockI2CBus)
			expectRegister(bus, regBarometerStatus, status)

			_, err := New(bus).GetBarometerTemperature(context.Background())
			assert.ErrorIs(t, err, ErrBarometerFailure)
			assert.Equal(t, []byte{regBarometerStatus}, bus.selected)
			bus.AssertExpectations(t)

			bus = new(MockI2CBus)
			expectRegister(bus, regBarometerStatus, status)

			_, err = New(bus).GetBarometerPressure(context.Background())
			assert.ErrorIs(t, err, ErrBarometerFailure)
			assert.Equal(t, []byte{regBarometerStatus}, bus.selected)
			bus.AssertExpectations(t)
		})
	}
}

func TestSensorHub_BarometerPressure_Composition(t *testing.T) {
	tests := []struct {
		name           string
		low, mid, high byte
		expected       float64
	}{
		{"datasheet example", 3, 5, 45, 29504.03},
		{"zero", 0, 0, 0, 0},
		{"standard pressure", 0xCD, 0x8B, 0x01, 1013.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := new(MockI2CBus)
			expectRegister(bus, regBarometerStatus, 0)
			expectRegister(bus, regBarometerPressLow, tt.low)
			expectRegister(bus, regBarometerPressMid, tt.mid)
			expectRegister(bus, regBarometerPressHigh, tt.high)

			pressure, err := New(bus).GetBarometerPressure(context.Background())

			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, pressure, 0.0001)
			assert.Equal(t, []byte{regBarometerStatus, regBarometerPressLow, regBarometerPressMid, regBarometerPressHigh}, bus.selected)
			bus.AssertExpectations(t)
		})
	}
}

func TestSensorHub_TransportWriteErrorAborts(t *testing.T) {
	busErr := errors.New("device not acknowledging")
	bus := new(MockI2CBus)
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regStatus}).Return(busErr).Once()

	_, err := New(bus).GetOffBoardTemperature(context.Background())

	assert.ErrorIs(t, err, busErr)
	bus.AssertExpectations(t)
}

func TestSensorHub_TransportReadErrorAborts(t *testing.T) {
	busErr := errors.New("i/o timeout")
	bus := new(MockI2CBus)
	expectRegister(bus, regStatus, 0)
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regLightHigh}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil, busErr).Once()

	_, err := New(bus).GetBrightness(context.Background())

	assert.ErrorIs(t, err, busErr)
	assert.Equal(t, []byte{regStatus, regLightHigh}, bus.selected, "the operation should abort on the failing read")
	bus.AssertExpectations(t)
}

func TestSensorHub_RepeatedReadsAreIdempotent(t *testing.T) {
	bus := new(MockI2CBus)
	for i := 0; i < 3; i++ {
		expectRegister(bus, regStatus, 0)
		expectRegister(bus, regLightHigh, 1)
		expectRegister(bus, regLightLow, 39)
	}

	h := New(bus)
	for i := 0; i < 3; i++ {
		lux, err := h.GetBrightness(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 295, lux)
	}
	bus.AssertExpectations(t)
}

func TestSensorHub_WithAddress(t *testing.T) {
	const address = 0x21
	bus := new(MockI2CBus)
	bus.On("WriteToAddr", mock.Anything, byte(address), []byte{regMotion}).Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(address), mock.Anything).Return([]byte{1}, nil).Once()

	motion, err := New(bus, WithAddress(address)).MotionDetected(context.Background())

	assert.NoError(t, err)
	assert.True(t, motion)
	bus.AssertExpectations(t)
}

func TestSensorHub_CloseReleasesTransport(t *testing.T) {
	bus := new(MockI2CBus)
	bus.On("Release", mock.Anything).Return(nil).Once()

	assert.NoError(t, New(bus).Close(context.Background()))
	bus.AssertExpectations(t)
}

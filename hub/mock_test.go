package hub

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockSensorHub_Defaults(t *testing.T) {
	h := NewMockSensorHub()
	ctx := context.Background()

	temp, err := h.GetTemperature(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, temp)

	motion, err := h.MotionDetected(ctx)
	assert.NoError(t, err)
	assert.False(t, motion)

	pressure, err := h.GetBarometerPressure(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, pressure)
}

func TestMockSensorHub_StaticValues(t *testing.T) {
	h := NewMockSensorHub()
	h.OffBoardTemperature = func(ctx context.Context) (int, error) { return 31, nil }
	h.Temperature = func(ctx context.Context) (int, error) { return 21, nil }
	h.Humidity = func(ctx context.Context) (int, error) { return 47, nil }
	h.Brightness = func(ctx context.Context) (int, error) { return 295, nil }
	h.Motion = func(ctx context.Context) (bool, error) { return true, nil }
	h.BarometerTemperature = func(ctx context.Context) (int, error) { return 19, nil }
	h.BarometerPressure = func(ctx context.Context) (float64, error) { return 1013.25, nil }

	ctx := context.Background()

	offBoard, err := h.GetOffBoardTemperature(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 31, offBoard)

	temp, err := h.GetTemperature(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 21, temp)

	hum, err := h.GetHumidity(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 47, hum)

	lux, err := h.GetBrightness(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 295, lux)

	motion, err := h.MotionDetected(ctx)
	assert.NoError(t, err)
	assert.True(t, motion)

	barTemp, err := h.GetBarometerTemperature(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 19, barTemp)

	pressure, err := h.GetBarometerPressure(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1013.25, pressure)
}

func TestMockSensorHub_DynamicBehavior(t *testing.T) {
	h := NewMockSensorHub()
	calls := 0
	h.Brightness = func(ctx context.Context) (int, error) {
		calls++
		if calls > 2 {
			return Unavailable, nil
		}
		return calls * 100, nil
	}

	ctx := context.Background()
	for i, expected := range []int{100, 200, Unavailable} {
		lux, err := h.GetBrightness(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, lux, "call %d", i+1)
	}
}

func TestMockSensorHub_ErrorSimulation(t *testing.T) {
	h := NewMockSensorHub()
	h.OffBoardTemperature = func(ctx context.Context) (int, error) {
		return 0, ErrTemperatureSensorMissing
	}
	h.BarometerPressure = func(ctx context.Context) (float64, error) {
		return 0, fmt.Errorf("wrapped: %w", ErrBarometerFailure)
	}

	ctx := context.Background()

	_, err := h.GetOffBoardTemperature(ctx)
	assert.ErrorIs(t, err, ErrTemperatureSensorMissing)

	_, err = h.GetBarometerPressure(ctx)
	assert.ErrorIs(t, err, ErrBarometerFailure)
}

func TestMockSensorHub_ContextPropagation(t *testing.T) {
	type key struct{}
	h := NewMockSensorHub()
	h.Humidity = func(ctx context.Context) (int, error) {
		assert.Equal(t, "value", ctx.Value(key{}))
		return 55, nil
	}

	ctx := context.WithValue(context.Background(), key{}, "value")
	hum, err := h.GetHumidity(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 55, hum)
}

package hub

import (
	"context"
)

// ReadingBehaviorFunc defines the function signature for integer-valued
// reading behaviors (temperatures, humidity, brightness).
type ReadingBehaviorFunc func(ctx context.Context) (int, error)

// MotionBehaviorFunc defines the function signature for motion behavior.
type MotionBehaviorFunc func(ctx context.Context) (bool, error)

// PressureBehaviorFunc defines the function signature for barometric
// pressure behavior, in hectopascals.
type PressureBehaviorFunc func(ctx context.Context) (float64, error)

// MockSensorHub mirrors the SensorHub read surface using behavior functions,
// so downstream code can be tested without the board attached. A zero
// behavior reports a fresh in-range reading of zero.
//
// Example usage:
//
//	h := NewMockSensorHub()
//	h.Temperature = func(ctx context.Context) (int, error) { return 21, nil }
//	h.Motion = func(ctx context.Context) (bool, error) { return true, nil }
type MockSensorHub struct {
	OffBoardTemperature  ReadingBehaviorFunc
	Temperature          ReadingBehaviorFunc
	Humidity             ReadingBehaviorFunc
	Brightness           ReadingBehaviorFunc
	Motion               MotionBehaviorFunc
	BarometerTemperature ReadingBehaviorFunc
	BarometerPressure    PressureBehaviorFunc
}

func NewMockSensorHub() *MockSensorHub {
	return &MockSensorHub{}
}

func (m *MockSensorHub) GetOffBoardTemperature(ctx context.Context) (int, error) {
	return callReading(ctx, m.OffBoardTemperature)
}

func (m *MockSensorHub) GetTemperature(ctx context.Context) (int, error) {
	return callReading(ctx, m.Temperature)
}

func (m *MockSensorHub) GetHumidity(ctx context.Context) (int, error) {
	return callReading(ctx, m.Humidity)
}

func (m *MockSensorHub) GetBrightness(ctx context.Context) (int, error) {
	return callReading(ctx, m.Brightness)
}

func (m *MockSensorHub) MotionDetected(ctx context.Context) (bool, error) {
	if m.Motion == nil {
		return false, nil
	}
	return m.Motion(ctx)
}

func (m *MockSensorHub) GetBarometerTemperature(ctx context.Context) (int, error) {
	return callReading(ctx, m.BarometerTemperature)
}

func (m *MockSensorHub) GetBarometerPressure(ctx context.Context) (float64, error) {
	if m.BarometerPressure == nil {
		return 0, nil
	}
	return m.BarometerPressure(ctx)
}

func callReading(ctx context.Context, behavior ReadingBehaviorFunc) (int, error) {
	if behavior == nil {
		return 0, nil
	}
	return behavior(ctx)
}

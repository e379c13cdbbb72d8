package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertRoundTrip(t *testing.T) {
	cases := []struct {
		from, to Unit
		value    float64
	}{
		{Celsius, Fahrenheit, 83.0},
		{KilometersPerHour, MilesPerHour, 120.0},
		{KiloPascal, PSI, 101.3},
		{LitresPerHour, GallonsPerHour, 12.5},
		{NewtonMeters, FootPounds, 250.0},
		{Hours, Seconds, 2.0},
	}

	for _, c := range cases {
		out, ok := (Scalar{Value: c.value, Unit: c.from}).Convert(c.to)
		assert.True(t, ok, "expected %v -> %v to be convertible", c.from, c.to)

		back, ok := out.Convert(c.from)
		assert.True(t, ok)
		assert.InEpsilonf(t, c.value, back.Value, 1e-3, "round trip mismatch for %v", c.from)
	}
}

func TestInconvertiblePairs(t *testing.T) {
	_, ok := (Scalar{Value: 1, Unit: RPM}).Convert(Volts)
	assert.False(t, ok)
}

func TestNoDataScalarIsSentinel(t *testing.T) {
	s := NoDataScalar()
	assert.True(t, s.IsNoData())
	assert.Equal(t, "NO DATA", s.String())
}

func TestNewAppliesPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	prefs.Temp = Fahrenheit

	s := New(83.0, Celsius, &prefs)
	assert.Equal(t, Fahrenheit, s.Unit)
	assert.True(t, math.Abs(s.Value-181.4) < 1e-9)
}

func TestNewWithoutPreferencesIsCanonical(t *testing.T) {
	s := New(83.0, Celsius, nil)
	assert.Equal(t, Celsius, s.Unit)
	assert.Equal(t, 83.0, s.Value)
}

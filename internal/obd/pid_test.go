package obd

import (
	"testing"

	"github.com/provrb/obdium/internal/response"
	"github.com/stretchr/testify/assert"
)

func rpmFromPayload(t *testing.T, a, b int) float64 {
	t.Helper()
	r, err := response.ParsePID("7E8 04 41 0C " + hexByte(a) + " " + hexByte(b) + "\r>")
	assert.NoError(t, err)
	return float64(256*r.A()+r.B()) / 4.0
}

func hexByte(v int) string {
	s := []byte("0123456789ABCDEF")
	return string([]byte{s[(v>>4)&0xF], s[v&0xF]})
}

func TestRPMFormula(t *testing.T) {
	assert.Equal(t, 1726.0, rpmFromPayload(t, 0x1A, 0xF8))
}

func TestCoolantTempFormula(t *testing.T) {
	r, err := response.ParsePID("7E8 04 41 05 7B 00\r>")
	assert.NoError(t, err)
	assert.Equal(t, 83.0, float64(r.A())-40)
}

func TestEngineTypeSparkWhenBitClear(t *testing.T) {
	r, _ := response.ParsePID("7E8 04 41 01 00 07\r>")
	assert.Zero(t, r.B()&0b00001000)
}

func TestEngineTypeCompressionWhenBitSet(t *testing.T) {
	r, _ := response.ParsePID("7E8 04 41 01 00 08\r>")
	assert.NotZero(t, r.B()&0b00001000)
}

func TestBoostGaugePressureNoDataWhenEitherInputMissing(t *testing.T) {
	s := &Session{replaying: true, journal: nil}
	got := s.BoostGaugePressure()
	assert.True(t, got.IsNoData())
}

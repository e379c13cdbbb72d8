package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePIDRPM(t *testing.T) {
	r, err := ParsePID("7E8 04 41 0C 1A F8\r>")
	assert.NoError(t, err)
	assert.Equal(t, 4, r.PayloadSize)
	assert.Equal(t, byte('4'), r.Service[0])
	assert.Equal(t, byte('1'), r.Service[1])
	assert.Equal(t, 0x1A, r.A())
	assert.Equal(t, 0xF8, r.B())
	assert.Equal(t, 0, r.C())
}

func TestParsePIDCoolantTemp(t *testing.T) {
	r, err := ParsePID("7E8 04 41 05 7B 00\r>")
	assert.NoError(t, err)
	assert.Equal(t, 0x7B, r.A())
}

func TestNoDataPayloadNeverInvokesOp(t *testing.T) {
	invoked := false
	got := MapNoData(Response{}, -1.0, func(r Response) float64 {
		invoked = true
		return 0
	})
	assert.False(t, invoked)
	assert.Equal(t, -1.0, got)
}

func TestPositionalAccessorsFullPayload(t *testing.T) {
	r, err := ParsePID("7E8 05 41 00 01 02 03 04\r>")
	assert.NoError(t, err)
	assert.Equal(t, 1, r.A())
	assert.Equal(t, 2, r.B())
	assert.Equal(t, 3, r.C())
	assert.Equal(t, 4, r.D())
	assert.Equal(t, 0, r.E())
}

func TestNoDataSentinel(t *testing.T) {
	_, err := ParsePID("7E8 NODATA\r>")
	assert.Error(t, err)
}

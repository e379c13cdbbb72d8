package obd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReassembleISOTPThreeFrames(t *testing.T) {
	raw := "10 14 49 02 01 4D 41 54\r21 34 30 33 30 39 36 42\r22 4E 4C 30 30 30 30 30\r>"
	vin, err := reassembleISOTP(raw)
	assert.NoError(t, err)
	assert.Equal(t, "MAT403096BNL00000", vin)
	assert.Len(t, vin, 17)
}

func TestReassembleISOTPSkipsShortAndUnknownFrames(t *testing.T) {
	raw := "10 14 49 02 01 4D 41 54\rFF\r21 34 30 33 30 39 36 42\r22 4E 4C 30 30 30 30 30\r>"
	vin, err := reassembleISOTP(raw)
	assert.NoError(t, err)
	assert.Equal(t, "MAT403096BNL00000", vin)
}

func TestReassembleISOTPStripsECUIdentifier(t *testing.T) {
	raw := "7E8 10 14 49 02 01 4D 41 54\r7E8 21 34 30 33 30 39 36 42\r7E8 22 4E 4C 30 30 30 30 30\r>"
	vin, err := reassembleISOTP(raw)
	assert.NoError(t, err)
	assert.Equal(t, "MAT403096BNL00000", vin)
}

func TestReassembleISOTPIgnoresUnknownFrameType(t *testing.T) {
	raw := "10 14 49 02 01 4D 41 54\r30 00 00\r21 34 30 33 30 39 36 42\r22 4E 4C 30 30 30 30 30\r>"
	vin, err := reassembleISOTP(raw)
	assert.NoError(t, err)
	assert.Equal(t, "MAT403096BNL00000", vin)
}

func TestReassembleISOTPNoDataIsError(t *testing.T) {
	_, err := reassembleISOTP("NO DATA\r>")
	assert.Error(t, err)
}

package obd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTroubleCodesPowertrain(t *testing.T) {
	codes := (&Session{}).decodeTroubleCodes("43 01 33 00 00")
	assert.Len(t, codes, 1)
	assert.Equal(t, "P0133", codes[0].DTC)
	assert.Equal(t, Powertrain, codes[0].Category)
	assert.False(t, codes[0].Permanent)
}

func TestDecodeTroubleCodesChassis(t *testing.T) {
	codes := (&Session{}).decodeTroubleCodes("43 41 33 00 00")
	assert.Len(t, codes, 1)
	assert.Equal(t, "C0133", codes[0].DTC)
	assert.Equal(t, Chassis, codes[0].Category)
}

func TestDecodeTroubleCodesBody(t *testing.T) {
	codes := (&Session{}).decodeTroubleCodes("43 81 33 00 00")
	assert.Len(t, codes, 1)
	assert.Equal(t, "B0133", codes[0].DTC)
	assert.Equal(t, Body, codes[0].Category)
}

func TestDecodeTroubleCodesNetwork(t *testing.T) {
	codes := (&Session{}).decodeTroubleCodes("43 C1 33 00 00")
	assert.Len(t, codes, 1)
	assert.Equal(t, "U0133", codes[0].DTC)
	assert.Equal(t, Network, codes[0].Category)
}

func TestDecodeTroubleCodesPermanent(t *testing.T) {
	codes := (&Session{}).decodeTroubleCodes("4A 01 33 00 00")
	assert.Len(t, codes, 1)
	assert.True(t, codes[0].Permanent)
}

func TestDecodeTroubleCodesNoData(t *testing.T) {
	codes := (&Session{}).decodeTroubleCodes("")
	assert.Nil(t, codes)
}

func TestHasPassedWithinRange(t *testing.T) {
	mt := MonitorTest{Value: 0xAA, Min: 0x05, Max: 0xFF}
	assert.True(t, mt.HasPassed())
}

func TestHasPassedOutsideRange(t *testing.T) {
	mt := MonitorTest{Value: 0x02, Min: 0x05, Max: 0xFF}
	assert.False(t, mt.HasPassed())
}

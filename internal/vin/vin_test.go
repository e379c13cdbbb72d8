package vin

import (
	"testing"

	"github.com/provrb/obdium/internal/obderr"
	"github.com/stretchr/testify/assert"
)

func TestChecksumValidVIN(t *testing.T) {
	v, err := New("KL4CJASB6JB660929")
	assert.NoError(t, err)
	digit, err := v.Checksum()
	assert.NoError(t, err)
	assert.Equal(t, byte('6'), digit)
}

func TestChecksumMismatch(t *testing.T) {
	_, err := New("KL4CJASB7JB660929")
	assert.Error(t, err)
	var oerr *obderr.Error
	assert.ErrorAs(t, err, &oerr)
	assert.Equal(t, obderr.InvalidCheckDigit, oerr.Kind)
}

func TestInvalidLengthRejected(t *testing.T) {
	_, err := New("SHORTVIN")
	assert.ErrorIs(t, err, obderr.New(obderr.InvalidVinLength))
}

func TestKeyDerivation(t *testing.T) {
	v := &VIN{raw: "KL4CJASB6JB660929"}
	key := v.Key()
	assert.Len(t, key, 14)
	assert.Equal(t, "CJASB|JB660929", key)
}

func TestWMIStandardForm(t *testing.T) {
	v := &VIN{raw: "KL4CJASB6JB660929"}
	assert.Equal(t, "KL4", v.WMI())
}

func TestWMIExtendedForm(t *testing.T) {
	// position 3 (index 2) is '9' -> extended WMI pulls chars 12-14 (index 11..14)
	v := &VIN{raw: "1X9ABCDEFGH123456"}
	assert.Equal(t, "1X9123", v.WMI())
}

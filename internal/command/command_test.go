package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirectFreezeFrameRewritesService01(t *testing.T) {
	cmd := NewPID([4]byte{'0', '1', '0', 'C'})
	cmd.RedirectFreezeFrame()
	assert.Equal(t, "020C", cmd.String())
}

func TestRedirectFreezeFrameLeavesOtherServicesUnchanged(t *testing.T) {
	cmd := NewPID([4]byte{'0', '3', '0', 'C'})
	cmd.RedirectFreezeFrame()
	assert.Equal(t, "030C", cmd.String())
}

func TestRedirectFreezeFrameIgnoresNonPIDCommands(t *testing.T) {
	cmd := NewAT([]byte("ATZ"))
	cmd.RedirectFreezeFrame()
	assert.Equal(t, "ATZ", cmd.String())
}

func TestSetATRejectsShortLiterals(t *testing.T) {
	var cmd Command
	ok := cmd.SetAT([]byte("AT"))
	assert.False(t, ok)
	assert.Nil(t, cmd.AT())
}

func TestValidateRejectsDefault(t *testing.T) {
	var cmd Command
	assert.Error(t, cmd.Validate())
}

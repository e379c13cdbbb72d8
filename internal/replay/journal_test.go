package replay

import (
	"path/filepath"
	"testing"

	"github.com/provrb/obdium/internal/command"
	"github.com/stretchr/testify/assert"
)

func TestRecordThenReplayEquivalence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	rpm := command.NewPID([4]byte{'0', '1', '0', 'C'})
	speed := command.NewPID([4]byte{'0', '1', '0', 'D'})

	rec, err := Open(path)
	assert.NoError(t, err)
	assert.NoError(t, rec.Record(rpm, "7E8 04 41 0C 1A F8"))
	assert.NoError(t, rec.Record(speed, "7E8 03 41 0D 32"))

	replayed, err := Open(path)
	assert.NoError(t, err)

	entry, ok := replayed.Next(rpm)
	assert.True(t, ok)
	assert.Equal(t, "7E8 04 41 0C 1A F8", entry.Response)
	assert.Equal(t, RequestTypePID, entry.RequestType)

	entry, ok = replayed.Next(speed)
	assert.True(t, ok)
	assert.Equal(t, "7E8 03 41 0D 32", entry.Response)
}

func TestNextMarksEntryPlayedOnlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	rpm := command.NewPID([4]byte{'0', '1', '0', 'C'})

	j, err := Open(path)
	assert.NoError(t, err)
	assert.NoError(t, j.Record(rpm, "7E8 04 41 0C 1A F8"))

	_, ok := j.Next(rpm)
	assert.True(t, ok)

	_, ok = j.Next(rpm)
	assert.False(t, ok, "a second Next for the same command should find no unplayed entry")
}

func TestResetPlayedAllowsReplayingAgain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	rpm := command.NewPID([4]byte{'0', '1', '0', 'C'})

	j, err := Open(path)
	assert.NoError(t, err)
	assert.NoError(t, j.Record(rpm, "7E8 04 41 0C 1A F8"))

	_, ok := j.Next(rpm)
	assert.True(t, ok)

	assert.NoError(t, j.ResetPlayed())

	_, ok = j.Next(rpm)
	assert.True(t, ok, "ResetPlayed should clear the played flag so Next finds the entry again")
}

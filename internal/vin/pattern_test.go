package vin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatchPatternUnderscoreWildcard(t *testing.T) {
	assert.True(t, matchPattern("CJASB", "_____%"))
}

func TestMatchPatternLiteral(t *testing.T) {
	assert.True(t, matchPattern("CJASB", "CJASB%"))
	assert.False(t, matchPattern("CJASC", "CJASB%"))
}

func TestMatchPatternCharacterClass(t *testing.T) {
	assert.True(t, matchPattern("CJAEB", "CJA[AE]B%"))
	assert.False(t, matchPattern("CJAXB", "CJA[AE]B%"))
}

func TestMatchPatternNegatedClass(t *testing.T) {
	assert.True(t, matchPattern("CJAXB", "CJA[^AE]B%"))
	assert.False(t, matchPattern("CJAAB", "CJA[^AE]B%"))
}

func TestMatchPatternRange(t *testing.T) {
	assert.True(t, matchPattern("CJA5B", "CJA[0-9]B%"))
	assert.False(t, matchPattern("CJAXB", "CJA[0-9]B%"))
}

func TestAsLikePatternConvertsStarAndAppendsPercent(t *testing.T) {
	assert.Equal(t, "__J[AE]%", asLikePattern("**J[AE]"))
}

func TestDecodeModelYearLetterRanges(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	year, err := decodeModelYear('A', 'X', false, now)
	assert.NoError(t, err)
	assert.Equal(t, 2010, year)
}

func TestDecodeModelYearDigitsAfter2030(t *testing.T) {
	now := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)
	year, err := decodeModelYear('1', 'X', false, now)
	assert.NoError(t, err)
	assert.Equal(t, 2031, year)
}

func TestDecodeModelYearLightTruckRollsBack30(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	year, err := decodeModelYear('J', '5', true, now)
	assert.NoError(t, err)
	assert.Equal(t, 2010+('J'-'A')-1-30, year)
}

func TestDecodeModelYearRejectsInvalidCharacter(t *testing.T) {
	_, err := decodeModelYear('!', 'X', false, time.Now())
	assert.Error(t, err)
}

func TestDecodeModelYearPWithoutOffset(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	year, err := decodeModelYear('P', 'X', false, now)
	assert.NoError(t, err)
	assert.Equal(t, 2023, year)
}

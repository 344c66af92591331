package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.8, Round2(4.7992))
	assert.Equal(t, 55.19, Round2(55.19))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.0, Round2(99.995))
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "09:00", FormatHour(9))
	assert.Equal(t, "15:00", FormatHour(15))
}

func TestParseHour(t *testing.T) {
	h, err := ParseHour("09:00")
	require.NoError(t, err)
	assert.Equal(t, 9, h)

	h, err = ParseHour("9:00")
	require.NoError(t, err)
	assert.Equal(t, 9, h)

	for _, bad := range []string{"", "09:30", "09", "9am", "25:00", "-1:00"} {
		_, err := ParseHour(bad)
		assert.Error(t, err, bad)
	}
}

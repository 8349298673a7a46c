package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBoundsNormalizesToUTC(t *testing.T) {
	caracas := time.FixedZone("VET", -4*60*60)
	// 22:30 in Caracas is 02:30 UTC the next day.
	local := time.Date(2026, 10, 19, 22, 30, 0, 0, caracas)

	start, end := DayBounds(local)

	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC), end)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, 19, d.Day())

	_, err = ParseDate("19/10/2026")
	assert.Error(t, err)
}

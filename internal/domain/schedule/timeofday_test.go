package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTOD(t *testing.T, hm string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(hm)
	require.NoError(t, err)
	return tod
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"00:00", 0},
		{"08:30", 510},
		{"12:00", 720},
		{"23:59", 1439},
	}

	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	for _, in := range []string{"", "8h30", "24:00", "12:60", "ontem"} {
		_, err := ParseTimeOfDay(in)
		assert.Error(t, err, in)
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "08:05", TimeOfDay(485).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "23:59", TimeOfDay(1439).String())
}

func TestTimeOfDay_At(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	got := mustTOD(t, "14:30").At(day)

	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, day.Day(), got.Day())
}

// Weekday canônico interno: 0 = segunda-feira, 6 = domingo.
func TestWeekdayOf(t *testing.T) {
	// 2026-03-09 é uma segunda-feira
	monday := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	for offset, want := range []int{0, 1, 2, 3, 4, 5, 6} {
		day := monday.AddDate(0, 0, offset)
		assert.Equal(t, want, WeekdayOf(day), day.Weekday().String())
	}
}

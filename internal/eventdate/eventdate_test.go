package eventdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in         string
		start, end time.Time
	}{
		{"March 15-17, 2024", day(2024, time.March, 15), day(2024, time.March, 17)},
		{"March 28, 2024", day(2024, time.March, 28), day(2024, time.March, 28)},
		{"April 5-8, 2024", day(2024, time.April, 5), day(2024, time.April, 8)},
		{"March 30 - April 2, 2024", day(2024, time.March, 30), day(2024, time.April, 2)},
		{"Apr 18, 2024", day(2024, time.April, 18), day(2024, time.April, 18)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			r, err := Parse(tc.in, time.UTC)
			require.NoError(t, err)
			assert.True(t, tc.start.Equal(r.Start), "start %v", r.Start)
			assert.True(t, tc.end.Equal(r.End), "end %v", r.End)
		})
	}
}

func TestParse_Unrecognized(t *testing.T) {
	for _, in := range []string{
		"",
		"TBA",
		"March 2024",
		"Smarch 3, 2024",
		"March 32, 2024",
		"February 30, 2024",
		"March 17-15, 2024",
		"March 15, next year",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in, time.UTC)
			assert.ErrorIs(t, err, ErrUnrecognized)
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r, err := Parse("March 15-17, 2024", time.UTC)
	require.NoError(t, err)

	assert.False(t, r.Contains(time.Date(2024, time.March, 14, 23, 59, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, time.March, 17, 18, 30, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3, r.Days())
}

func TestParse_RangeAcrossYearEndIsUnrecognized(t *testing.T) {
	_, err := Parse("December 30 - January 2, 2025", time.UTC)
	assert.ErrorIs(t, err, ErrUnrecognized)

	r, err := Parse("December 30-31, 2024", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Days())
}

//go:build unit

package ok

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)
	midnight := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		value string
		want  time.Time
	}{
		{value: "now", want: base},
		{value: "today", want: midnight},
		{value: "midnight", want: midnight},
		{value: "tomorrow", want: midnight.AddDate(0, 0, 1)},
		{value: "Yesterday", want: midnight.AddDate(0, 0, -1)},
		{value: "@86400", want: time.Unix(86400, 0)},
		{value: "2024-01-02", want: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)},
		{value: "2024-01-02 03:04:05", want: time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)},
		{value: "2024-01-02T03:04:05Z", want: time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)},
		{value: "2024-01-02T03:04:05+02:00", want: time.Date(2024, time.January, 2, 1, 4, 5, 0, time.UTC)},
		{value: "2 January 2024", want: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)},
		{value: "Tue, 02 Jan 2024 03:04:05 +0000", want: time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)},
		{value: "2024/01/02", want: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)},
		{value: "18:00", want: time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC)},
		{value: "+1 day", want: base.AddDate(0, 0, 1)},
		{value: "-2 weeks", want: base.AddDate(0, 0, -14)},
		{value: "+90min", want: base.Add(90 * time.Minute)},
		{value: "3 hours ago", want: base.Add(-3 * time.Hour)},
		{value: "next month", want: base.AddDate(0, 1, 0)},
		{value: "last year", want: base.AddDate(-1, 0, 0)},
		{value: "1 day 2 hours", want: base.AddDate(0, 0, 1).Add(2 * time.Hour)},
		{value: "tomorrow +2 hours", want: midnight.AddDate(0, 0, 1).Add(2 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTime(tt.value, base)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Unix(), got)
		})
	}
}

func TestParseTime_ZeroBaseIsNow(t *testing.T) {
	t.Parallel()

	before := time.Now().Unix()

	got, err := ParseTime("now", time.Time{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, time.Now().Unix())
}

func TestParseTime_Invalid(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "   ", "not a date", "@abc", "+1 lightyear", "next", "2024-13-45", "ago", "tomorrow ago", "now ago"} {
		_, err := ParseTime(value, time.Now())
		requireFailure(t, err, "ParseTime")
		assert.ErrorIs(t, err, ErrUnparsableTime, value)
	}
}

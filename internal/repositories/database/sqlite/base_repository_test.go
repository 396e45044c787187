package sqlite

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeLexicalOrderIsChronological(t *testing.T) {
	base := time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC)

	// Mixed precisions within the same second are the interesting case: a
	// whole-second value must sort before any fractional value of that
	// second under plain string comparison.
	chronological := []time.Time{
		base,
		base.Add(time.Nanosecond),
		base.Add(500 * time.Millisecond),
		base.Add(time.Second),
		base.Add(time.Second + 500*time.Millisecond),
	}

	want := make([]string, len(chronological))
	for i, ts := range chronological {
		want[i] = formatTime(ts)
	}

	got := append([]string(nil), want...)
	sort.Strings(got)

	assert.Equal(t, want, got, "lexical sort must preserve chronological order")
}

func TestFormatTimeFixedWidth(t *testing.T) {
	times := []time.Time{
		time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 14, 12, 0, 0, 500000000, time.UTC),
		time.Date(2025, 7, 14, 12, 0, 0, 123456789, time.UTC),
	}

	width := len(formatTime(times[0]))
	for _, ts := range times[1:] {
		assert.Len(t, formatTime(ts), width, "formatted timestamps must share one width")
	}
}

func TestParseTimeRoundTrip(t *testing.T) {
	ts := time.Date(2025, 7, 14, 12, 0, 0, 123456789, time.UTC)

	parsed, err := parseTime(formatTime(ts))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestParseTimeLegacyLayouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "trimmed fraction",
			input: "2025-07-14T12:00:00.5Z",
			want:  time.Date(2025, 7, 14, 12, 0, 0, 500000000, time.UTC),
		},
		{
			name:  "second precision",
			input: "2025-07-14T12:00:00Z",
			want:  time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "sqlite datetime default",
			input: "2025-07-14 12:00:05",
			want:  time.Date(2025, 7, 14, 12, 0, 5, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2025-07-14",
			want:  time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseTime(tt.input)
			require.NoError(t, err)
			assert.True(t, parsed.Equal(tt.want), "parsed %v, want %v", parsed, tt.want)
		})
	}
}

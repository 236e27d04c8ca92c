package blob

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModifiedTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "rfc1123 gmt",
			raw:  "Tue, 11 Feb 2026 12:00:00 GMT",
			want: time.Date(2026, time.February, 11, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "numeric negative offset",
			raw:  "Wed, 11 Feb 2026 23:30:00 -0500",
			want: time.Date(2026, time.February, 12, 4, 30, 0, 0, time.UTC),
		},
		{
			name: "no zone is utc",
			raw:  "Wed, 11 Feb 2026 12:00:00",
			want: time.Date(2026, time.February, 11, 12, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseModifiedTime(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestParseModifiedTime_Invalid(t *testing.T) {
	_, err := ParseModifiedTime("three days ago")
	require.Error(t, err)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "three days ago", fe.Value)
	assert.Contains(t, err.Error(), "three days ago")
}

func TestModifiedDate_TruncatesToUTCCalendarDay(t *testing.T) {
	day := time.Date(2026, time.February, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{"start of day", "Wed, 11 Feb 2026 00:00:00 GMT", day, true},
		{"end of day", "Wed, 11 Feb 2026 23:59:59 GMT", day, true},
		{"offset crosses midnight", "Wed, 11 Feb 2026 23:30:00 -0500", day.AddDate(0, 0, 1), true},
		{"missing timestamp", "", time.Time{}, false},
		{"unparsable timestamp", "not-a-timestamp", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Record{Name: "r.csv", LastModified: tt.raw}.ModifiedDate()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2026-02-11")
	require.NoError(t, err)
	assert.True(t, time.Date(2026, time.February, 11, 0, 0, 0, 0, time.UTC).Equal(got))
}

func TestParseDay_MalformedNamesOffendingString(t *testing.T) {
	_, err := ParseDay("02-11-2026")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "02-11-2026")
}

package timezone_test

import (
	"testing"
	"time"

	"pms/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, timezone.GetLocation(), today.Location())
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, 1, 10, 23, 59, 59, 0, time.UTC)

	got := timezone.StartOfDay(in)

	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		want    string
	}{
		{name: "valid date", value: "2025-01-13", want: "2025-01-13"},
		{name: "leap day", value: "2024-02-29", want: "2024-02-29"},
		{name: "timestamp rejected", value: "2025-01-13T10:00:00Z", wantErr: true},
		{name: "garbage", value: "13/01/2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := timezone.ParseDay(tt.value)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, day.Format("2006-01-02"))
			assert.Equal(t, timezone.GetLocation(), day.Location())
		})
	}
}

func TestFormat(t *testing.T) {
	formatted := timezone.Format(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), time.RFC3339)

	assert.NotEmpty(t, formatted)
}

func TestDateOf(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	late := time.Date(2025, 1, 10, 23, 30, 0, 0, jakarta)

	got := timezone.DateOf(late)

	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), got)
	assert.True(t, timezone.DateOf(got).Equal(got))
}

func TestParseDate(t *testing.T) {
	got, err := timezone.ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), got)

	_, err = timezone.ParseDate("2025-02-30")
	assert.Error(t, err)

	assert.Equal(t, time.UTC, timezone.CurrentDate().Location())
}

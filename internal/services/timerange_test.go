package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	got, err := FormatTimestamp("2024-05-01T09:00")
	require.NoError(t, err)
	assert.Equal(t, "May 01, 2024 | 09:00", got)

	got, err = FormatTimestamp("2024-12-31T23:59")
	require.NoError(t, err)
	assert.Equal(t, "December 31, 2024 | 23:59", got)

	_, err = FormatTimestamp("tomorrow morning")
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestFormatTimeRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		strict    bool
		wantStart string
		wantEnd   string
		wantErr   error
	}{
		{
			name:      "both set",
			start:     "2024-05-01T09:00",
			end:       "2024-05-01T10:00",
			wantStart: "May 01, 2024 | 09:00",
			wantEnd:   "May 01, 2024 | 10:00",
		},
		{name: "neither set"},
		{name: "only start is dropped", start: "2024-05-01T09:00"},
		{name: "only end is dropped", end: "2024-05-01T10:00"},
		{name: "neither set strict", strict: true},
		{name: "only start strict", start: "2024-05-01T09:00", strict: true, wantErr: ErrIncompleteTimeRange},
		{name: "only end strict", end: "2024-05-01T10:00", strict: true, wantErr: ErrIncompleteTimeRange},
		{name: "malformed start", start: "05/01/2024", end: "2024-05-01T10:00", wantErr: ErrInvalidTimestamp},
		{name: "malformed end", start: "2024-05-01T09:00", end: "10am", wantErr: ErrInvalidTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := formatTimeRange(tt.start, tt.end, tt.strict)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			if tt.wantStart == "" {
				assert.Nil(t, start)
				assert.Nil(t, end)
				return
			}
			require.NotNil(t, start)
			require.NotNil(t, end)
			assert.Equal(t, tt.wantStart, *start)
			assert.Equal(t, tt.wantEnd, *end)
		})
	}
}

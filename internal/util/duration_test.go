package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr string
	}{
		{name: "plain minutes", input: "30", want: 30 * time.Minute},
		{name: "zero minutes", input: "0", want: 0},
		{name: "padded minutes", input: " 120 ", want: 2 * time.Hour},
		{name: "hours", input: "2h", want: 2 * time.Hour},
		{name: "hours and minutes", input: "2h30m", want: 150 * time.Minute},
		{name: "seconds", input: "1h30m45s", want: time.Hour + 30*time.Minute + 45*time.Second},
		{name: "fractional hours", input: "1.5h", want: 90 * time.Minute},
		{name: "letters", input: "abc", wantErr: "invalid duration format"},
		{name: "unknown unit", input: "2x30m", wantErr: "invalid duration format"},
		{name: "empty", input: "", wantErr: "invalid duration format"},
		{name: "negative minutes", input: "-5", wantErr: "cannot be negative"},
		{name: "negative duration", input: "-1h", wantErr: "cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Contains(t, err.Error(), "Valid formats", "errors carry format help")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

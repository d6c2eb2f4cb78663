package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"12:60", true},
		{"9am", true},
		{"", true},
		{"12:00:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, ts.String())
			}
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, time.October, 10, 9, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("09:30"), ts)
}

func TestMinutes(t *testing.T) {
	ts := TimeString("09:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), shifted)
}

func TestAddMinutes_WrapsMidnight(t *testing.T) {
	ts := TimeString("23:30")

	shifted, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), shifted)
}

func TestScan_TruncatesSeconds(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)
}

func TestValue(t *testing.T) {
	ts := TimeString("09:00")
	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)
}

package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "midnight", input: "00:00", expected: "12:00 AM"},
		{name: "noon", input: "12:00", expected: "12:00 PM"},
		{name: "early afternoon", input: "13:05", expected: "1:05 PM"},
		{name: "late evening", input: "23:45", expected: "11:45 PM"},
		{name: "morning", input: "09:30", expected: "9:30 AM"},
		{name: "just before noon", input: "11:59", expected: "11:59 AM"},
		{name: "missing separator", input: "0900", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:61", wantErr: true},
		{name: "non-numeric", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatted, err := FormatTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, formatted)
		})
	}
}

func TestSchedule_AddDeduplicates(t *testing.T) {
	schedule := NewSchedule()

	require.NoError(t, schedule.Add("13:05"))
	require.NoError(t, schedule.Add("13:05"))
	require.NoError(t, schedule.Add("09:30"))

	assert.Equal(t, []string{"1:05 PM", "9:30 AM"}, schedule.Times())

	// Re-adding an already present formatted time leaves the set unchanged.
	schedule.AddFormatted("1:05 PM")
	assert.Equal(t, 2, schedule.Len())
}

func TestSchedule_Toggle(t *testing.T) {
	schedule := NewSchedule()

	schedule.Toggle("10:00 AM")
	assert.True(t, schedule.Contains("10:00 AM"))

	schedule.Toggle("10:35 AM")
	schedule.Toggle("10:00 AM")
	assert.False(t, schedule.Contains("10:00 AM"))
	assert.Equal(t, []string{"10:35 AM"}, schedule.Times())
}

func TestDefaultTimes(t *testing.T) {
	assert.Equal(t, []string{"10:00 AM", "10:35 AM", "01:45 PM", "03:45 PM"}, DefaultTimes)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "midnight", in: "12:00 AM", want: 0},
		{name: "noon", in: "12:00 PM", want: 720},
		{name: "afternoon", in: "1:30 PM", want: 810},
		{name: "leading zero hour", in: "02:00 PM", want: 840},
		{name: "morning", in: "9:15 AM", want: 555},
		{name: "lowercase meridiem", in: "11:59 pm", want: 1439},
		{name: "missing meridiem", in: "14:00", wantErr: true},
		{name: "hour out of range", in: "13:00 PM", wantErr: true},
		{name: "minute out of range", in: "1:60 PM", wantErr: true},
		{name: "garbage", in: "noonish", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockTime(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeSlot(t *testing.T) {
	slot, err := NewTimeSlot("2026-03-14", "2:00 PM")
	require.NoError(t, err)
	assert.Equal(t, TimeSlot{Date: "2026-03-14", Minute: 840}, slot)

	_, err = NewTimeSlot("2026-03-14", "25:00 PM")
	require.Error(t, err)
}

// TimeSlot is the composite collision key: same date plus same normalized
// minute means occupied, regardless of how the clock time was written.
func TestTimeSlotEquality(t *testing.T) {
	a, err := NewTimeSlot("2026-03-14", "2:00 PM")
	require.NoError(t, err)
	b, err := NewTimeSlot("2026-03-14", "02:00 pm")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	otherDay, err := NewTimeSlot("2026-03-15", "2:00 PM")
	require.NoError(t, err)
	assert.NotEqual(t, a, otherDay)

	otherMinute, err := NewTimeSlot("2026-03-14", "2:01 PM")
	require.NoError(t, err)
	assert.NotEqual(t, a, otherMinute)
}

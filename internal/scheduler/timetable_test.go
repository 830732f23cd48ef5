package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockOf(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"nine am", "09:00 AM", 18, false},
		{"noon", "12:00 PM", 24, false},
		{"midnight-as-twelve-am", "12:00 AM", 0, false},
		{"nine thirty pm", "09:30 PM", 43, false},
		{"hour zero rejected", "00:30 AM", 0, true},
		{"hour thirteen rejected", "13:00 PM", 0, true},
		{"malformed grammar", "9:00am", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BlockOf(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDayOf(t *testing.T) {
	for i, letter := range []byte("MTWRF") {
		day, err := DayOf(letter)
		require.NoError(t, err)
		assert.Equal(t, i, day)
	}
	_, err := DayOf('S')
	assert.ErrorIs(t, err, ErrMalformedDay)
}

func TestTimetablePlaceSetsGridAndBitmap(t *testing.T) {
	tt := NewTimetable()
	tt.Place(0, 18, 20, 5)

	assert.Equal(t, 5, tt.Grid[0][18])
	assert.Equal(t, 5, tt.Grid[0][19])
	assert.Equal(t, int(Open), tt.Grid[0][20], "end block is exclusive")

	expected := uint64(1)<<uint(NumBlocks-18-1) | uint64(1)<<uint(NumBlocks-19-1)
	assert.Equal(t, expected, tt.Bitmap[0])
}

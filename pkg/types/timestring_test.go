package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid midday", input: "12:00"},
		{name: "valid last minute", input: "23:59"},
		{name: "valid midnight", input: "00:00"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "with seconds", input: "12:00:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abcde", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeStringOrdering(t *testing.T) {
	early := TimeString("12:30")
	late := TimeString("19:00")

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
	assert.False(t, early.IsAfter(early))
}

func TestNewTimeStringFromTime(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 11, 14, 20, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("20:30"), ts)
}

func TestTimeStringScan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want TimeString
	}{
		{name: "string", src: "19:30", want: "19:30"},
		{name: "time column with seconds", src: "19:30:00", want: "19:30"},
		{name: "bytes", src: []byte("12:00"), want: "12:00"},
		{name: "time.Time", src: time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC), want: "23:00"},
		{name: "nil", src: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			require.NoError(t, ts.Scan(tt.src))
			assert.Equal(t, tt.want, ts)
		})
	}

	var ts TimeString
	assert.Error(t, ts.Scan(42))
}

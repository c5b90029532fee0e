package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		minutes int
	}{
		{"09:00", "09:00", 540},
		{"9:5", "09:05", 545},
		{"00:00", "00:00", 0},
		{"23:59", "23:59", 1439},
		{"14:30:00", "14:30", 870}, // Postgres TIME scan shape
	}

	for _, c := range cases {
		ts, err := NewTimeStringFromString(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, ts.String(), c.in)
		assert.Equal(t, c.minutes, ts.Minutes(), c.in)
	}
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "24:00", "12:60", "-1:00", "12"} {
		_, err := NewTimeStringFromString(in)
		assert.ErrorIs(t, err, ErrInvalidTimeString, in)
	}
}

func TestNewTimeString_TruncatesToMinute(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 7, 9, 15, 42, 999, time.UTC))
	assert.Equal(t, "09:15", ts.String())
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(870)
	require.NoError(t, err)
	assert.Equal(t, "14:30", ts.String())

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
	_, err = NewTimeStringFromMinutes(1440)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparisons(t *testing.T) {
	nine, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	ten, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)
	nineAgain, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)

	assert.True(t, nine.IsBefore(ten))
	assert.False(t, ten.IsBefore(nine))
	assert.True(t, ten.IsAfter(nine))
	assert.True(t, nine.Equal(nineAgain))
	assert.False(t, nine.Equal(ten))
}

func TestTimeString_AddMinutes(t *testing.T) {
	nine, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)

	later, err := nine.AddMinutes(15)
	require.NoError(t, err)
	assert.Equal(t, "09:15", later.String())

	lateNight, err := NewTimeStringFromString("23:50")
	require.NoError(t, err)
	_, err = lateNight.AddMinutes(15)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_ZeroValue(t *testing.T) {
	var ts TimeString

	assert.True(t, ts.IsZero())
	assert.Error(t, ts.Validate())
	assert.False(t, ts.Equal(ts)) // invalid values never compare equal
}

func TestTimeString_ScanAndValue(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, "14:30", ts.String())

	require.NoError(t, ts.Scan([]byte("09:15")))
	assert.Equal(t, "09:15", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 9, 7, 11, 45, 0, 0, time.UTC)))
	assert.Equal(t, "11:45", ts.String())

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "11:45", v)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
	v, err = ts.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.Error(t, ts.Scan(42))
}

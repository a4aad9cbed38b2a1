package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("9:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeStringFromHour(t *testing.T) {
	ts, err := NewTimeStringFromHour(7)
	require.NoError(t, err)
	assert.Equal(t, "07:00", ts.String())

	_, err = NewTimeStringFromHour(24)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("17:30")

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.Equal(t, 17, b.Hour())
	assert.Equal(t, -1, TimeString("bad").Hour())
}

func TestTimeString_AddMinutes(t *testing.T) {
	next, err := TimeString("10:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), next)

	_, err = TimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("08:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 14, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:05"), ts)

	assert.Error(t, ts.Scan(42))
}

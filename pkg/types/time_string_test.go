package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("9:30am")
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	min, err := TimeString("10:15").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 615, min)

	min, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, min)

	_, err = TimeString("").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("10:00").AddMinutes(75)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), ts)

	ts, err = TimeString("10:30").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), ts)

	// выход за границы суток запрещён
	_, err = TimeString("23:30").AddMinutes(45)
	assert.Error(t, err)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.Error(t, err)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("20:00").IsAfter("19:59"))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)

	got, err := TimeString("14:30").On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 7, 14, 30, 0, 0, time.Local), got)

	// секунды исходной даты обнуляются
	noisy := time.Date(2026, 9, 7, 5, 6, 7, 8, time.Local)
	got, err = TimeString("10:00").On(noisy)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Second())
	assert.Equal(t, 0, got.Nanosecond())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	// Postgres возвращает время с секундами
	require.NoError(t, ts.Scan("18:45:00"))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}

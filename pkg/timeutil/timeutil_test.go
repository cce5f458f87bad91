package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	b := time.Date(2026, 9, 7, 23, 59, 59, 0, time.Local)
	c := time.Date(2026, 9, 8, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestDateOnly(t *testing.T) {
	got := DateOnly(time.Date(2026, 9, 7, 14, 35, 12, 99, time.Local))
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local), got)
	assert.Equal(t, time.Local, got.Location())
}

func TestFormatLocalISO(t *testing.T) {
	// сериализация не переводит значение в UTC и не добавляет смещение
	got := FormatLocalISO(time.Date(2026, 9, 7, 14, 30, 0, 0, time.Local))
	assert.Equal(t, "2026-09-07T14:30:00", got)
}

func TestParseLocalISO(t *testing.T) {
	got, err := ParseLocalISO("2026-09-07T14:30:00")
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 30, got.Minute())

	// строка без секунд тоже принимается
	got, err = ParseLocalISO("2026-09-07T14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())

	_, err = ParseLocalISO("07.09.2026 14:30")
	assert.Error(t, err)
}

func TestParseLocalISO_RoundTripsInLocalZone(t *testing.T) {
	// разбор обязан идти в локальной зоне процесса, иначе моменты из запросов
	// сдвигаются относительно time.Now() на смещение зоны
	want := time.Date(2026, 9, 7, 14, 30, 0, 0, time.Local)

	got, err := ParseLocalISO(FormatLocalISO(want))
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
	assert.Equal(t, time.Local, got.Location())

	// вариант без секунд в той же зоне
	got, err = ParseLocalISO("2026-09-07T14:30")
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
	assert.Equal(t, time.Local, got.Location())
}

func TestAddMinutes(t *testing.T) {
	base := time.Date(2026, 9, 7, 10, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 45, 0, 0, time.Local), AddMinutes(base, 45))
	assert.Equal(t, time.Date(2026, 9, 7, 9, 30, 0, 0, time.Local), AddMinutes(base, -30))
}

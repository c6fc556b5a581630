package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString_Valid(t *testing.T) {
	for _, raw := range []string{"00:00", "09:00", "12:30", "23:59"} {
		ts, err := NewTimeStringFromString(raw)
		require.NoError(t, err, "label %q must be accepted", raw)
		assert.Equal(t, raw, ts.String())
	}
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	for _, raw := range []string{
		"9:00",        // без ведущего нуля
		"25:00",       // час за пределами суток
		"12:60",       // минуты за пределами часа
		"12:5",        // короткая запись минут
		"12:30:00",    // с секундами
		"abcde",       // не время
		"",            // пустая строка
		" 12:30",      // пробел
		"12-30",       // неверный разделитель
	} {
		_, err := NewTimeStringFromString(raw)
		assert.Error(t, err, "label %q must be rejected", raw)
	}
}

func TestNewTimeString_FromTime(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 3, 10, 9, 5, 33, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestTimeString_Ordering(t *testing.T) {
	a, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	b, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(b))
	assert.False(t, a.IsBefore(a))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("09:45")
	require.NoError(t, err)

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "10:15", next.String())

	// Выход за границу суток - ошибка, а не перенос на следующий день
	late, err := NewTimeStringFromString("23:45")
	require.NoError(t, err)
	_, err = late.AddMinutes(30)
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Постгрес возвращает TIME как HH:MM:SS, секунды усечены
	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, "09:00", ts.String())

	require.NoError(t, ts.Scan([]byte("14:30")))
	assert.Equal(t, "14:30", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestTimeString_Value(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)
}

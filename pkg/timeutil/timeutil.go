package timeutil

import "time"

// LocalISOFormat формат локальной ISO-строки без смещения таймзоны
// Все моменты времени в системе хранятся и сравниваются как "наивное" локальное время,
// поэтому сериализация НЕ переводит значение в UTC
const LocalISOFormat = "2006-01-02T15:04:05"

// AddMinutes добавляет минуты к моменту времени
func AddMinutes(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}

// SameDay проверяет, что два момента относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время суток, оставляя только дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatLocalISO сериализует момент времени в локальную ISO-строку (без перевода в UTC)
func FormatLocalISO(t time.Time) string {
	return t.Format(LocalISOFormat)
}

// ParseLocalISO разбирает локальную ISO-строку
// Принимает также строки с секундами и без ("2006-01-02T15:04")
//
// Разбор идёт в локальной зоне процесса, как и везде в системе:
// иначе моменты из запросов расходились бы с time.Now() на смещение зоны
func ParseLocalISO(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(LocalISOFormat, s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, time.Local)
}

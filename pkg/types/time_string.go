package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timeFormat формат времени HH:MM
const timeFormat = "15:04"

// TimeString представляет время суток в формате "HH:MM" (без даты и таймзоны)
// Используется для рабочих часов, перерывов и времени начала слотов
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return TimeString(t.Format(timeFormat)), nil
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (ts TimeString) Validate() error {
	_, err := time.Parse(timeFormat, string(ts))
	if err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(timeFormat, string(ts))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %v", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes добавляет минуты к времени
// Возвращает ошибку при выходе за границы суток (23:59), чтобы слот не "переполз" на следующий день
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := ts.Minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %s + %d minutes is out of day range", ts, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// On возвращает момент времени: дата date с временем суток ts
// Секунды и доли секунды обнуляются
func (ts TimeString) On(date time.Time) (time.Time, error) {
	t, err := time.Parse(timeFormat, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time string format: %v", err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		*ts = TimeString(v)
	case []byte:
		*ts = TimeString(v)
	case time.Time:
		*ts = NewTimeString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	// Postgres может вернуть время с секундами ("10:00:00") - нормализуем
	if len(*ts) > 5 {
		*ts = (*ts)[:5]
	}
	return ts.Validate()
}

package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString локальное время дня в формате "HH:MM" (24 часа)
// Используется для рабочих окон (правила, исключения): это wall-clock время
// без даты и таймзоны
type TimeString string

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат операции выходит за границы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	// Нормализуем к "HH:MM" (отбрасываем секунды, ведущие нули и т.п.)
	h, m, _ := ts.parts()
	return TimeString(fmt.Sprintf("%02d:%02d", h, m)), nil
}

// Validate проверяет, что значение имеет корректный формат "HH:MM"
func (t TimeString) Validate() error {
	_, _, err := t.parts()
	return err
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes() < other.minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes() > other.minutes()
}

// AddMinutes возвращает время через n минут
// Возвращает ошибку, если результат выходит за границы суток
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	h, m, err := t.parts()
	if err != nil {
		return "", err
	}

	total := h*60 + m + n
	if total < 0 || total > 23*60+59 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, n)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// MinutesOfDay возвращает количество минут с начала суток
// Для некорректного значения возвращает -1
func (t TimeString) MinutesOfDay() int {
	return t.minutes()
}

// At привязывает время дня к календарной дате, возвращая полный time.Time
// в локации даты
func (t TimeString) At(date time.Time) (time.Time, error) {
	h, m, err := t.parts()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location()), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner
// PostgreSQL TIME колонки приходят как "HH:MM:SS" - секунды отбрасываем
func (t *TimeString) Scan(src interface{}) error {
	var s string

	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}

	if len(s) > 5 {
		s = s[:5]
	}

	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// minutes возвращает минуты с начала суток или -1 для некорректного значения
func (t TimeString) minutes() int {
	h, m, err := t.parts()
	if err != nil {
		return -1
	}
	return h*60 + m
}

// parts разбирает "HH:MM" на часы и минуты
func (t TimeString) parts() (int, int, error) {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	return h, m, nil
}

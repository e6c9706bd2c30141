package domain

import (
	"fmt"
	"time"
)

const (
	DayKeyLayout   = "2006-01-02"
	MonthKeyLayout = "2006-01"
)

// ParseDayKey validates a zero-padded YYYY-MM-DD calendar day key.
func ParseDayKey(key string) (time.Time, error) {
	if len(key) != len(DayKeyLayout) {
		return time.Time{}, fmt.Errorf("invalid day key %q", key)
	}
	t, err := time.ParseInLocation(DayKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// ParseMonthKey validates a zero-padded YYYY-MM month key.
func ParseMonthKey(key string) (time.Time, error) {
	if len(key) != len(MonthKeyLayout) {
		return time.Time{}, fmt.Errorf("invalid month key %q", key)
	}
	t, err := time.ParseInLocation(MonthKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// MonthOf returns the YYYY-MM month key containing a day key.
func MonthOf(dayKey string) (string, error) {
	t, err := ParseDayKey(dayKey)
	if err != nil {
		return "", err
	}
	return t.Format(MonthKeyLayout), nil
}

// PrevDay returns the day key one calendar day before dayKey.
func PrevDay(dayKey string) (string, error) {
	t, err := ParseDayKey(dayKey)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(DayKeyLayout), nil
}

// IsFirstOfMonth reports whether a day key denotes the first of its month.
func IsFirstOfMonth(dayKey string) bool {
	t, err := ParseDayKey(dayKey)
	if err != nil {
		return false
	}
	return t.Day() == 1
}

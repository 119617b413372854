package gallery

import (
	"fmt"
	"time"
)

const dateKeyLayout = "2006-01-02"

// DateKey formats t as a zero-padded YYYY-MM-DD key in t's own location.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a key produced by DateKey.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}

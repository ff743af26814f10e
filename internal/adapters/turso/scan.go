package turso

import (
	"fmt"
	"time"

	"github.com/emiliopalmerini/folio/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTime converts a TEXT timestamp column. go-libsql hands back values that
// look like dates as time.Time, everything else as string or []byte.
func scanTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		return parseTime(t)
	case []byte:
		return parseTime(string(t))
	case nil:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("unexpected time value %v (%T)", v, v)
	}
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, domain.DateLayout, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
}

// scanDay converts an activity date column to UTC midnight.
func scanDay(v any) (time.Time, error) {
	t, err := scanTime(v)
	if err != nil {
		return time.Time{}, err
	}
	if t.IsZero() {
		return time.Time{}, domain.ErrInvalidDate
	}
	return domain.Day(t), nil
}

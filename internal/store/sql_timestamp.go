package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// timestamp scans a timestamp column from either dialect. SQLite may hand
// back the textual form when the column type is not known to the driver,
// for example in RETURNING clauses.
type timestamp struct {
	dest *time.Time
}

func scanTime(dest *time.Time) *timestamp {
	return &timestamp{dest: dest}
}

// Scan implements [database/sql.Scanner].
func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t.dest = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		*t.dest = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t.dest = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}

package store

import (
	"fmt"
	"time"
)

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// timestamp scans driver values that may arrive as time.Time or text.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		*ts.t = time.Time{}
		return nil
	}
	return fmt.Errorf("unsupported timestamp type %T", src)
}

func (ts timestamp) parse(s string) error {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*ts.t = parsed
			return nil
		}
	}
	return fmt.Errorf("unparseable timestamp %q", s)
}

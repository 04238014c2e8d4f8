package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// localDateTimeLayout is an ISO-8601 timestamp without a zone offset.
const localDateTimeLayout = "2006-01-02T15:04:05.999999999"

// DueDate accepts RFC 3339 timestamps and zone-less ones such as
// "2024-06-01T10:00:00"; the latter are read as UTC.
type DueDate struct {
	time.Time
}

func (d *DueDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("dueDate: expected a string, got %s", data)
	}
	t, err := parseDueDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(localDateTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("dueDate: unsupported timestamp %q", s)
	}
	return t, nil
}

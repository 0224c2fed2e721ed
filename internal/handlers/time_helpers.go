package handlers

import (
	"errors"
	"strings"
	"time"
)

var errInvalidDate = errors.New("invalid date")

// accepted layouts for dates sent by clients, most precise first
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseClientDate reads a date or date-time. Values without an offset are
// taken as UTC.
func parseClientDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errInvalidDate
}

// optionalDate parses v when present.
func optionalDate(v *string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	t, err := parseClientDate(*v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

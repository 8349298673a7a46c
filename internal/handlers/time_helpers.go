package handlers

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Layouts accepted for instants. Values without an offset are UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// timestamp decodes start dates sent by the admin and mobile clients.
type timestamp struct {
	time.Time
}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := parseInstant(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func parseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

// parseBound reads a list filter bound. A bare date as the upper bound
// covers that whole day.
func parseBound(s string, upper bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if d, err := timezone.ParseDate(s); err == nil {
		if upper {
			d = d.AddDate(0, 0, 1)
		}
		return &d, nil
	}
	t, err := parseInstant(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

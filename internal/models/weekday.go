package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is the canonical day key: ISO 8601 numbering, Monday=1 .. Sunday=7.
// JSON input accepts the number, lowercase English names and Spanish names;
// output is always the English name.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var weekdayAliases = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
	"lunes":     Monday,
	"martes":    Tuesday,
	"miercoles": Wednesday,
	"miércoles": Wednesday,
	"jueves":    Thursday,
	"viernes":   Friday,
	"sabado":    Saturday,
	"sábado":    Saturday,
	"domingo":   Sunday,
}

// ParseWeekday normalizes any accepted spelling to the canonical key.
func ParseWeekday(s string) (Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := weekdayAliases[s]; ok {
		return d, true
	}
	if !isDigits(s) {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil && Weekday(n).Valid() {
		return Weekday(n), true
	}
	return 0, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// WeekdayOf returns the UTC weekday of t.
func WeekdayOf(t time.Time) Weekday {
	wd := t.UTC().Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

func (d Weekday) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return json.Marshal(d.String())
}

func (d *Weekday) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var parsed Weekday
	var ok bool
	switch v := raw.(type) {
	case string:
		parsed, ok = ParseWeekday(v)
	case float64:
		parsed = Weekday(int(v))
		ok = float64(int(v)) == v && parsed.Valid()
	}
	if !ok {
		return fmt.Errorf("invalid weekday %s", string(b))
	}

	*d = parsed
	return nil
}

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Stamp is a calendar timestamp as it travels through the pipeline: either a
// bare date (all-day semantics) or a date plus time-of-day, optionally carrying
// a fixed UTC offset. LLM output and the wire format both use the string forms
// "2025-09-06", "2025-09-06T09:00:00" and "2025-09-06T09:00:00-05:00".
type Stamp struct {
	Year  int
	Month time.Month
	Day   int

	HasTime bool
	Hour    int
	Minute  int
	Second  int

	// OffsetSeconds is the fixed UTC offset east of UTC.
	// Only meaningful when HasOffset is true; otherwise the stamp is zone-naive.
	HasOffset     bool
	OffsetSeconds int
}

var errEmptyStamp = errors.New("empty timestamp")

// ParseStamp parses the supported string forms into a Stamp.
func ParseStamp(s string) (*Stamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyStamp
	}

	if !strings.Contains(s, "T") {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("unrecognized date %q: %w", s, err)
		}
		return &Stamp{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		_, offset := t.Zone()
		return &Stamp{
			Year: t.Year(), Month: t.Month(), Day: t.Day(),
			HasTime: true, Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
			HasOffset: true, OffsetSeconds: offset,
		}, nil
	}

	// Zone-naive datetime, with or without seconds.
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &Stamp{
				Year: t.Year(), Month: t.Month(), Day: t.Day(),
				HasTime: true, Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
			}, nil
		}
	}

	return nil, fmt.Errorf("unrecognized timestamp %q", s)
}

// StampFromTime builds a timed Stamp from t. When withOffset is true the
// stamp carries t's fixed UTC offset.
func StampFromTime(t time.Time, withOffset bool) *Stamp {
	s := &Stamp{
		Year: t.Year(), Month: t.Month(), Day: t.Day(),
		HasTime: true, Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
	}
	if withOffset {
		_, offset := t.Zone()
		s.HasOffset = true
		s.OffsetSeconds = offset
	}
	return s
}

// DateStamp builds a bare-date Stamp.
func DateStamp(year int, month time.Month, day int) *Stamp {
	return &Stamp{Year: year, Month: month, Day: day}
}

// String renders the wire form.
func (s *Stamp) String() string {
	date := fmt.Sprintf("%04d-%02d-%02d", s.Year, int(s.Month), s.Day)
	if !s.HasTime {
		return date
	}
	out := fmt.Sprintf("%sT%02d:%02d:%02d", date, s.Hour, s.Minute, s.Second)
	if s.HasOffset {
		out += formatOffset(s.OffsetSeconds)
	}
	return out
}

// DateString renders only the date part.
func (s *Stamp) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", s.Year, int(s.Month), s.Day)
}

func formatOffset(seconds int) string {
	if seconds == 0 {
		return "Z"
	}
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

// Time converts the stamp to a time.Time. Zone-naive stamps are interpreted
// in loc; bare dates resolve to midnight.
func (s *Stamp) Time(loc *time.Location) time.Time {
	if s.HasOffset {
		loc = time.FixedZone("", s.OffsetSeconds)
	} else if loc == nil {
		loc = time.UTC
	}
	return time.Date(s.Year, s.Month, s.Day, s.Hour, s.Minute, s.Second, 0, loc)
}

// SetDate replaces the calendar date, preserving any time-of-day.
func (s *Stamp) SetDate(year int, month time.Month, day int) {
	s.Year, s.Month, s.Day = year, month, day
}

// SameDate reports whether both stamps fall on the same calendar date.
func (s *Stamp) SameDate(o *Stamp) bool {
	return o != nil && s.Year == o.Year && s.Month == o.Month && s.Day == o.Day
}

// AddMinutes returns a new timed stamp n minutes later. Day rollover follows
// plain clock arithmetic; the offset flag is preserved.
func (s *Stamp) AddMinutes(n int) *Stamp {
	t := s.Time(time.UTC).Add(time.Duration(n) * time.Minute)
	out := StampFromTime(t, false)
	out.HasOffset = s.HasOffset
	out.OffsetSeconds = s.OffsetSeconds
	return out
}

// AddDays returns a new stamp n days later, preserving the time component.
func (s *Stamp) AddDays(n int) *Stamp {
	t := time.Date(s.Year, s.Month, s.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	out := s.Clone()
	out.SetDate(t.Year(), t.Month(), t.Day())
	return out
}

// MinutesUntil returns the whole minutes from s to o.
// Both stamps must carry a time component for the result to be meaningful;
// zone-naive stamps are compared on the same clock.
func (s *Stamp) MinutesUntil(o *Stamp) int {
	return int(o.Time(time.UTC).Sub(s.Time(time.UTC)) / time.Minute)
}

// Clone returns a copy of the stamp.
func (s *Stamp) Clone() *Stamp {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}

// MarshalJSON implements json.Marshaler.
func (s *Stamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Stamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStamp(raw)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

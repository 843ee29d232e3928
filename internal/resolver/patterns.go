package resolver

import (
	"regexp"
	"time"
)

var (
	nextWeekdayPattern = regexp.MustCompile(`(?i)next\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	tomorrowPattern = regexp.MustCompile(`(?i)\btomorrow\b`)

	monthDayPattern = regexp.MustCompile(`(?i)(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)

	// "at 3pm", "at 9:30", "at 5". Dotted meridiem forms come first so the
	// alternation does not stop at the bare prefix.
	atTimePattern = regexp.MustCompile(`(?i)\bat\s+(\d{1,2})(?::(\d{2}))?\s*(a\.m\.|p\.m\.|am|pm)?`)

	// Bare fallback grammar, applied after duration and month-day phrases
	// are masked out of the utterance.
	bareTimePattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(a\.m\.|p\.m\.|am|pm)?\b`)

	durationPattern = regexp.MustCompile(`(?i)for\s+(\d+)\s+(hours?|hrs?|minutes?|mins?)\b`)

	// Permissive RFC-5322-style email token; run against the original-case
	// utterance.
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// titleStopWords are removed before deriving a fallback title.
var titleStopWords = map[string]struct{}{
	"schedule": {},
	"a":        {},
	"meeting":  {},
	"with":     {},
	"on":       {},
	"at":       {},
	"for":      {},
}

// Package resolver corrects and completes event drafts from natural-language
// cues in the utterance: relative dates ("next friday", "tomorrow"), absolute
// month-day phrases, times of day and durations. It is the rule-based half of
// the extraction pipeline and also serves as the full fallback when the LLM
// path is unavailable.
package resolver

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"voice-calendar-assistant/internal/model"
)

// Resolver applies date/time correction rules to event drafts.
type Resolver struct {
	opts Options
	loc  *time.Location
}

// New creates a Resolver for the configured home zone.
func New(opts Options) (*Resolver, error) {
	if opts.HomeZone == "" {
		opts.HomeZone = DefaultHomeZone
	}
	loc, err := time.LoadLocation(opts.HomeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", opts.HomeZone, err)
	}
	return &Resolver{opts: opts, loc: loc}, nil
}

// HomeZone returns the resolver's IANA zone identifier.
func (r *Resolver) HomeZone() string {
	return r.opts.HomeZone
}

// Resolve corrects draft in place against the utterance and returns it.
// now is the injected reference moment; it is captured once so the multi-step
// resolution never observes a torn clock. Resolve never fails: unparseable
// phrases leave the corresponding fields untouched.
func (r *Resolver) Resolve(draft *model.EventDraft, utterance string, now time.Time) *model.EventDraft {
	if draft == nil {
		draft = &model.EventDraft{Intent: model.IntentCreateEvent}
	}
	r.resolve(draft, utterance, now)
	return draft
}

func (r *Resolver) resolve(draft *model.EventDraft, utterance string, now time.Time) resolution {
	now = now.In(r.loc)
	lower := strings.ToLower(utterance)

	res := r.detectDate(lower, now)

	// No phrase matched: a start from an untrusted source (wrong year) is
	// pushed to tomorrow; a current-year start is left alone.
	if res.rule == ruleNone && draft.Start != nil && draft.Start.Year != now.Year() {
		res.rule = ruleDefault
		res.date = now.AddDate(0, 0, 1)
	}

	hour, minute, timeOK := detectTime(lower)
	res.timeResolved = timeOK

	haveDate := res.rule != ruleNone

	switch {
	case draft.Start == nil && timeOK:
		// Nothing to correct, so anchor the detected time: the matched date
		// phrase if any, otherwise tomorrow.
		date := now.AddDate(0, 0, 1)
		if haveDate {
			date = res.date
		}
		draft.Start = model.DateStamp(date.Year(), date.Month(), date.Day())
		draft.Start.HasTime = true
		draft.Start.Hour = hour
		draft.Start.Minute = minute

	case draft.Start != nil:
		if haveDate {
			draft.Start.SetDate(res.date.Year(), res.date.Month(), res.date.Day())
		}
		if timeOK {
			draft.Start.HasTime = true
			draft.Start.Hour = hour
			draft.Start.Minute = minute
			draft.Start.Second = 0
		}
	}

	r.applyDuration(draft, lower, &res)

	if emails := emailPattern.FindAllString(utterance, -1); len(emails) > 0 {
		draft.Attendees = emails
	}

	r.reconcile(draft, res)
	return res
}

// detectDate finds the winning date phrase. Absolute month-day beats the
// relative cues; an invalid day-of-month is treated as no absolute match and
// falls through to the weaker rules.
func (r *Resolver) detectDate(lower string, now time.Time) resolution {
	if m := monthDayPattern.FindStringSubmatch(lower); m != nil {
		month := months[m[1]]
		day, _ := strconv.Atoi(m[2])
		if date, ok := validDate(now.Year(), month, day, r.loc); ok {
			return resolution{rule: ruleAbsolute, date: date, monthName: m[1], monthDay: day}
		}
	}

	if m := nextWeekdayPattern.FindStringSubmatch(lower); m != nil {
		target := weekdays[m[1]]
		days := (int(target) - int(now.Weekday()) + 7) % 7
		if days == 0 {
			// "next monday" on a Monday is the following Monday, never today.
			days = 7
		}
		return resolution{rule: ruleWeekday, date: now.AddDate(0, 0, days), weekdayName: m[1]}
	}

	if tomorrowPattern.MatchString(lower) {
		return resolution{rule: ruleTomorrow, date: now.AddDate(0, 0, 1)}
	}

	return resolution{rule: ruleNone}
}

// validDate reports whether day exists in month (day 30 of February does
// not), returning the normalized date when it does.
func validDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if date.Month() != month || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

// detectTime parses a time-of-day phrase, normalized to 24-hour clock.
// The "at H[:MM] [am|pm]" grammar wins; a bare clock is accepted as fallback
// after duration and month-day phrases are masked so their numbers cannot be
// mistaken for an hour.
func detectTime(lower string) (hour, minute int, ok bool) {
	m := atTimePattern.FindStringSubmatch(lower)
	if m == nil {
		masked := durationPattern.ReplaceAllString(lower, " ")
		masked = monthDayPattern.ReplaceAllString(masked, " ")
		m = bareTimePattern.FindStringSubmatch(masked)
	}
	if m == nil {
		return 0, 0, false
	}

	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch meridiem := strings.ReplaceAll(m[3], ".", ""); meridiem {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	default:
		// Evening-meeting heuristic: a bare 1-7 means afternoon/evening.
		if hour >= 1 && hour <= 7 {
			hour += 12
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// applyDuration handles "for N hours/minutes" and the 60-minute default.
// Both only apply once start is anchored to a time of day.
func (r *Resolver) applyDuration(draft *model.EventDraft, lower string, res *resolution) {
	if draft.Start == nil || !draft.Start.HasTime {
		return
	}

	if m := durationPattern.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		minutes := n
		if strings.HasPrefix(m[2], "h") {
			minutes = n * 60
		}
		draft.End = draft.Start.AddMinutes(minutes)
		draft.DurationMinutes = minutes
		res.derivedEnd = true
		return
	}

	if draft.End == nil {
		minutes := draft.DurationMinutes
		if minutes <= 0 {
			minutes = 60
		}
		draft.End = draft.Start.AddMinutes(minutes)
		draft.DurationMinutes = minutes
		res.derivedEnd = true
	}
}

// reconcile is the final consistency pass: it re-synchronizes end with the
// corrected start and keeps durationMinutes equal to end minus start.
func (r *Resolver) reconcile(draft *model.EventDraft, res resolution) {
	switch {
	case draft.Start != nil && draft.Start.HasTime:
		if draft.End != nil && draft.End.HasTime && !res.derivedEnd {
			// Only the date may have been corrected; carry end's original
			// time-of-day onto the corrected date.
			draft.End.SetDate(draft.Start.Year, draft.Start.Month, draft.Start.Day)
			minutes := draft.Start.MinutesUntil(draft.End)
			if minutes < 0 {
				fallback := draft.DurationMinutes
				if fallback <= 0 {
					fallback = 60
				}
				draft.End = draft.Start.AddMinutes(fallback)
				draft.DurationMinutes = fallback
			} else {
				draft.DurationMinutes = minutes
			}
		} else if draft.End != nil && !draft.End.HasTime {
			minutes := draft.DurationMinutes
			if minutes <= 0 {
				minutes = 60
			}
			draft.End = draft.Start.AddMinutes(minutes)
			draft.DurationMinutes = minutes
		}

	case draft.Start != nil:
		// All-day: end is a bare date one day later unless the source already
		// supplied a different bare end date.
		if draft.End == nil || draft.End.HasTime || draft.End.SameDate(draft.Start) {
			draft.End = draft.Start.AddDays(1)
		}
		draft.DurationMinutes = 0
	}

	if draft.Timezone == "" {
		draft.Timezone = r.opts.HomeZone
	}

	if r.opts.AppendUTCOffset {
		r.stampOffset(draft.Start)
		r.stampOffset(draft.End)
	}
}

// stampOffset attaches the home zone's UTC offset at the stamp's wall time.
func (r *Resolver) stampOffset(s *model.Stamp) {
	if s == nil || !s.HasTime || s.HasOffset {
		return
	}
	t := time.Date(s.Year, s.Month, s.Day, s.Hour, s.Minute, s.Second, 0, r.loc)
	_, offset := t.Zone()
	s.HasOffset = true
	s.OffsetSeconds = offset
}

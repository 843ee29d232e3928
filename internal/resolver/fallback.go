package resolver

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"voice-calendar-assistant/internal/model"
)

// Fallback constructs an event draft from the utterance alone, using the same
// phrase-detection rules in the same priority order. It is used whenever the
// LLM path is unreachable or returns output that cannot be parsed.
func (r *Resolver) Fallback(utterance string, now time.Time) *model.EventDraft {
	draft := &model.EventDraft{
		Intent:   model.IntentCreateEvent,
		Timezone: r.opts.HomeZone,
	}
	res := r.resolve(draft, utterance, now)
	draft.Title = deriveTitle(utterance, res)
	return draft
}

// deriveTitle takes the first four non-stop-word tokens of the utterance,
// with the matched date/time/duration phrases masked out first. When nothing
// remains the default depends on which date rule fired: a weekday phrase
// yields "<Weekday> Meeting", an absolute date "Meeting on <Month> <Day>",
// anything else plain "Meeting".
func deriveTitle(utterance string, res resolution) string {
	masked := utterance
	for _, re := range []*regexp.Regexp{monthDayPattern, nextWeekdayPattern, tomorrowPattern, atTimePattern, durationPattern} {
		masked = re.ReplaceAllString(masked, " ")
	}

	var kept []string
	for _, tok := range strings.Fields(masked) {
		if _, stop := titleStopWords[strings.ToLower(tok)]; stop {
			continue
		}
		kept = append(kept, tok)
		if len(kept) == 4 {
			break
		}
	}
	if len(kept) > 0 {
		return strings.Join(kept, " ")
	}

	switch res.rule {
	case ruleWeekday:
		return capitalize(res.weekdayName) + " Meeting"
	case ruleAbsolute:
		return fmt.Sprintf("Meeting on %s %d", capitalize(res.monthName), res.monthDay)
	default:
		return "Meeting"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

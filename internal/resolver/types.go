package resolver

import "time"

// DefaultHomeZone is used when no home timezone is configured.
const DefaultHomeZone = "America/New_York"

// Options selects the resolver variant.
type Options struct {
	// HomeZone is the IANA zone applied to drafts that carry no timezone.
	HomeZone string

	// AppendUTCOffset stamps the home zone's fixed UTC offset onto resolved
	// timed stamps. When false, resolved stamps stay zone-naive and the
	// calendar layer attaches the zone by name.
	AppendUTCOffset bool
}

// dateRule records which phrase category decided the event date.
type dateRule int

const (
	ruleNone dateRule = iota
	ruleAbsolute
	ruleWeekday
	ruleTomorrow
	ruleDefault
)

// resolution summarizes one Resolve pass. Title derivation in fallback mode
// depends on which date rule fired.
type resolution struct {
	rule dateRule
	date time.Time

	weekdayName string
	monthName   string
	monthDay    int

	timeResolved bool
	derivedEnd   bool
}

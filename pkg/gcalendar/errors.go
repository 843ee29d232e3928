package gcalendar

import "errors"

// ErrEventNotFound is returned when no event matches the given title.
var ErrEventNotFound = errors.New("event not found")

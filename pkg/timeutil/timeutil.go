package timeutil

import "time"

// ArchiveGrace is how long past its start an event stays in the live
// collection. An event "ends" one hour after its scheduled date.
const ArchiveGrace = time.Hour

// ActiveWindow is how far ahead the active-events view looks. Events further
// out exist but are not displayed yet.
const ActiveWindow = 10 * 24 * time.Hour

// EventEnd returns the instant an event stops being live.
func EventEnd(date time.Time) time.Time {
	return date.Add(ArchiveGrace)
}

// IsArchivable reports whether an event is past its relevance window.
// Strict: at exactly date+1h the event is still live.
func IsArchivable(now, date time.Time) bool {
	return now.After(EventEnd(date))
}

// InActiveWindow reports whether an event is close enough to display.
func InActiveWindow(now, date time.Time) bool {
	return !date.After(now.Add(ActiveWindow))
}

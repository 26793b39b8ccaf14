package domain

import "time"

// DateLayout is the calendar-day format used for Session.Date and all
// streak/bucketing math. Day granularity only.
const DateLayout = "2006-01-02"

// Session is one completed meditation session. Sessions are append-only:
// once written they are never edited or deleted.
type Session struct {
	ID               string      `json:"id"`
	Date             string      `json:"date"`
	DurationSeconds  int         `json:"durationSeconds"`
	Mode             SessionMode `json:"mode"`
	BreathingPattern string      `json:"breathingPattern"`
	AmbientSound     string      `json:"ambientSound"`
	CompletedAt      time.Time   `json:"completedAt"`
}

// SessionDraft carries the caller-supplied fields of a session. The tracker
// assigns ID and CompletedAt when the draft is appended.
type SessionDraft struct {
	Date             string
	DurationSeconds  int
	Mode             SessionMode
	BreathingPattern string
	AmbientSound     string
}

// Day parses the session's calendar date. ok is false for records whose
// date string does not parse; such records are skipped by date math.
func (s Session) Day() (time.Time, bool) {
	t, err := time.Parse(DateLayout, s.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

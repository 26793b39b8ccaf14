package domain

type SessionMode string

const (
	ModeMorning SessionMode = "morning"
	ModeEvening SessionMode = "evening"
)

// ValidModes is the canonical set of accepted session mode strings.
var ValidModes = map[string]bool{
	"morning": true,
	"evening": true,
}

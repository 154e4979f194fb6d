package core

// EventKind identifies what happened during a simulation tick.
type EventKind int

const (
	EventNone EventKind = iota
	EventLevelEscaped
	EventPlayerCaught
	EventPlayerFell
	EventGameWon
)

// String returns a short identifier used for logging and persistence.
func (k EventKind) String() string {
	switch k {
	case EventLevelEscaped:
		return "escaped"
	case EventPlayerCaught:
		return "caught"
	case EventPlayerFell:
		return "fell"
	case EventGameWon:
		return "won"
	default:
		return "none"
	}
}

// Event describes a notable game occurrence within a single tick.
// The platform consumes events for persistence (run log) and UI feedback.
type Event struct {
	Kind  EventKind
	Level string // Level name the event occurred on
	Ticks int    // Attempt duration in simulation ticks
}

package recorder

import "time"

// ChartEvent records one chart evaluation by the watcher.
type ChartEvent struct {
	Profile       string
	Source        string // "internal" or the external source name
	AscendantSign string
	MoonNakshatra string
	Lineage       string // active dasha chain, e.g. "Mars/Rahu/Jupiter"
	YogaCount     int
}

// TransitionEvent records a newly announced dasha period.
type TransitionEvent struct {
	Profile string
	Lineage string
	Level   string
	Planet  string
	Start   time.Time
	End     time.Time
}

// NotificationEvent records one outbound message attempt.
type NotificationEvent struct {
	Profile   string
	ChatID    string
	Kind      string // "TRANSITION", "DIGEST" or "COMMAND"
	Delivered bool
	Error     string
}

// Transition is a stored transition row.
type Transition struct {
	ID         string
	RecordedAt time.Time
	TransitionEvent
}

// Recorder persists watcher history for later review.
type Recorder interface {
	RecordChart(evt *ChartEvent) error
	RecordTransition(evt *TransitionEvent) error
	RecordNotification(evt *NotificationEvent) error
	RecentTransitions(profile string, limit int) ([]Transition, error)
	Close() error
}

package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordChart(_ *ChartEvent) error                     { return nil }
func (n *NoopRecorder) RecordTransition(_ *TransitionEvent) error           { return nil }
func (n *NoopRecorder) RecordNotification(_ *NotificationEvent) error       { return nil }
func (n *NoopRecorder) RecentTransitions(string, int) ([]Transition, error) { return nil, nil }
func (n *NoopRecorder) Close() error                                        { return nil }

package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStep    EventType = "step"
	EventVerdict EventType = "verdict"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Automaton string    `json:"automaton,omitempty"`
}

// StepEvent is emitted after each consumed symbol.
type StepEvent struct {
	EventBase
	Position int      `json:"position"`
	Symbol   string   `json:"symbol"`
	Active   []string `json:"active"`
}

// VerdictEvent is emitted once the input is exhausted.
type VerdictEvent struct {
	EventBase
	Symbols  int           `json:"symbols"`
	Accepted bool          `json:"accepted"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for simulator observability.
type LifecycleHooks struct {
	OnStep    func(context.Context, *StepEvent)
	OnVerdict func(context.Context, *VerdictEvent)
}

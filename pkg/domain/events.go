package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeEnter      EventType = "node_enter"
	EventChoiceSelected EventType = "choice_selected"
	EventMissingNode    EventType = "missing_node"
	EventSummary        EventType = "summary"
	EventRestart        EventType = "restart"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// NodeEvent represents entry into a node (or a failed attempt to enter one).
type NodeEvent struct {
	EventBase
	NodeID   string `json:"node_id"`
	NodeType string `json:"node_type,omitempty"`
	// Depth is the path length after the entry was recorded.
	Depth int `json:"depth"`
}

// ChoiceEvent represents the activation of a choice.
type ChoiceEvent struct {
	EventBase
	ChoiceID string `json:"choice_id"`
	From     string `json:"from"`
	To       string `json:"to"`
	Label    string `json:"label"`
}

// LifecycleHooks defines callbacks for reader observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnNodeEnter      func(context.Context, *NodeEvent)
	OnChoiceSelected func(context.Context, *ChoiceEvent)
	OnMissingNode    func(context.Context, *NodeEvent)
	OnSummary        func(context.Context, *NodeEvent)
	OnRestart        func(context.Context, *EventBase)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnNodeEnter:      chain(h.OnNodeEnter, other.OnNodeEnter),
		OnChoiceSelected: chain(h.OnChoiceSelected, other.OnChoiceSelected),
		OnMissingNode:    chain(h.OnMissingNode, other.OnMissingNode),
		OnSummary:        chain(h.OnSummary, other.OnSummary),
		OnRestart:        chain(h.OnRestart, other.OnRestart),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}

package observability

import (
	"context"

	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts reader events. Attach it to an engine with Hooks.
type Metrics struct {
	nodeEntries  *prometheus.CounterVec
	choices      prometheus.Counter
	missingNodes prometheus.Counter
	endings      *prometheus.CounterVec
	restarts     prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
// A nil registerer skips registration (useful in tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		nodeEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "branchtale_node_entries_total",
			Help: "Total number of node entries recorded on a path.",
		}, []string{"node"}),
		choices: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "branchtale_choices_selected_total",
			Help: "Total number of choices activated.",
		}),
		missingNodes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "branchtale_missing_nodes_total",
			Help: "Total number of attempts to enter a node that does not exist.",
		}),
		endings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "branchtale_endings_total",
			Help: "Total number of traversals that reached a terminal node.",
		}, []string{"node"}),
		restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "branchtale_restarts_total",
			Help: "Total number of explicit restarts.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.nodeEntries, m.choices, m.missingNodes, m.endings, m.restarts)
	}
	return m
}

// Hooks returns lifecycle hooks that update the counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(_ context.Context, e *domain.NodeEvent) {
			m.nodeEntries.WithLabelValues(e.NodeID).Inc()
		},
		OnChoiceSelected: func(_ context.Context, _ *domain.ChoiceEvent) {
			m.choices.Inc()
		},
		OnMissingNode: func(_ context.Context, _ *domain.NodeEvent) {
			m.missingNodes.Inc()
		},
		OnSummary: func(_ context.Context, e *domain.NodeEvent) {
			m.endings.WithLabelValues(e.NodeID).Inc()
		},
		OnRestart: func(_ context.Context, _ *domain.EventBase) {
			m.restarts.Inc()
		},
	}
}

package observability_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/aretw0/branchtale/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnNodeEnter(ctx, &domain.NodeEvent{NodeID: "A01"})
	hooks.OnNodeEnter(ctx, &domain.NodeEvent{NodeID: "A01"})
	hooks.OnChoiceSelected(ctx, &domain.ChoiceEvent{ChoiceID: "AC01"})
	hooks.OnMissingNode(ctx, &domain.NodeEvent{NodeID: "A99"})
	hooks.OnSummary(ctx, &domain.NodeEvent{NodeID: "A03"})
	hooks.OnRestart(ctx, &domain.EventBase{})

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	expected := `
# HELP branchtale_node_entries_total Total number of node entries recorded on a path.
# TYPE branchtale_node_entries_total counter
branchtale_node_entries_total{node="A01"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "branchtale_node_entries_total"))
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP branchtale_endings_total Total number of traversals that reached a terminal node.
# TYPE branchtale_endings_total counter
branchtale_endings_total{node="A03"} 1
`), "branchtale_endings_total"))
}

func TestNewMetrics_NilRegisterer(t *testing.T) {
	assert.NotPanics(t, func() {
		m := observability.NewMetrics(nil)
		m.Hooks().OnRestart(context.Background(), &domain.EventBase{})
	})
}

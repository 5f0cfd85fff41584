package runtime_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/branchtale/internal/index"
	"github.com/aretw0/branchtale/internal/runtime"
	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storyIndex is a small graph:
//
//	A01 --AC01 Look around--> A02 --AC03 Open the door--> A04 (end)
//	A01 --AC02 Go back to sleep--> A03 (end)
//	A02 --AC04 (no LEADS_TO)
//	A02 --AC05 Climb out--> A99 (missing)
func storyIndex() *index.Index {
	nodes := []domain.Node{
		{ID: "A01", Type: "scene", Text: "You wake up."},
		{ID: "A02", Type: "scene", Text: "A dim room with a door."},
		{ID: "A03", Type: "ending", Text: "You sleep forever."},
		{ID: "A04", Type: "ending", Text: "Daylight."},
	}
	// Deliberately out of order.
	choices := []domain.Choice{
		{ID: "AC02", Source: "A01", Destination: "A03", Label: "Go back to sleep"},
		{ID: "AC05", Source: "A02", Destination: "A99", Label: "Climb out"},
		{ID: "AC01", Source: "A01", Destination: "A02", Label: "Look around"},
		{ID: "AC04", Source: "A02", Label: "Wait"},
		{ID: "AC03", Source: "A02", Destination: "A04", Label: "Open the door"},
	}
	return index.Build(nodes, choices)
}

func newController(t *testing.T, opts ...runtime.ControllerOption) *runtime.Controller {
	t.Helper()
	seq := 0
	opts = append([]runtime.ControllerOption{runtime.WithSessionIDFunc(func() string {
		seq++
		return fmt.Sprintf("session-%d", seq)
	})}, opts...)
	c := runtime.NewController(storyIndex(), opts...)
	require.NoError(t, c.Start(context.Background()))
	return c
}

func selectLabel(t *testing.T, c *runtime.Controller, label string) error {
	t.Helper()
	for _, cv := range c.View().Reader.Choices {
		if cv.Label == label {
			return c.Select(context.Background(), cv.Index)
		}
	}
	t.Fatalf("choice %q not on display", label)
	return nil
}

func ptr(s string) *string { return &s }

func TestController_StartRendersEntryNode(t *testing.T) {
	c := newController(t)

	view := c.View()
	assert.Equal(t, domain.PhaseReading, view.Phase)
	assert.Equal(t, "session-1", view.SessionID)
	require.NotNil(t, view.Reader)
	assert.Nil(t, view.Summary)

	assert.Equal(t, "A01", view.Reader.NodeID)
	assert.Equal(t, "scene", view.Reader.NodeType)
	assert.Equal(t, "You wake up.", view.Reader.Text)
	assert.Empty(t, view.Reader.Error)

	assert.Equal(t, []domain.PathEntry{{NodeID: "A01", Text: "You wake up.", ChosenLabel: nil}}, c.Path())
}

func TestController_ChoicesOrderedAndUppercased(t *testing.T) {
	c := newController(t)

	choices := c.View().Reader.Choices
	require.Len(t, choices, 2)
	assert.Equal(t, domain.ChoiceView{Index: 0, ChoiceID: "AC01", Label: "LOOK AROUND"}, choices[0])
	assert.Equal(t, domain.ChoiceView{Index: 1, ChoiceID: "AC02", Label: "GO BACK TO SLEEP"}, choices[1])
}

func TestController_SelectRecordsChosenLabel(t *testing.T) {
	c := newController(t)

	require.NoError(t, selectLabel(t, c, "LOOK AROUND"))

	view := c.View()
	require.NotNil(t, view.Reader)
	assert.Equal(t, "A02", view.Reader.NodeID)
	assert.Equal(t, "A dim room with a door.", view.Reader.Text)

	assert.Equal(t, []domain.PathEntry{
		{NodeID: "A01", Text: "You wake up.", ChosenLabel: nil},
		{NodeID: "A02", Text: "A dim room with a door.", ChosenLabel: ptr("Look around")},
	}, c.Path())
}

func TestController_TerminalNodeShowsSummary(t *testing.T) {
	c := newController(t)

	require.NoError(t, selectLabel(t, c, "LOOK AROUND"))
	require.NoError(t, selectLabel(t, c, "OPEN THE DOOR"))

	view := c.View()
	assert.Equal(t, domain.PhaseSummary, view.Phase)
	assert.Nil(t, view.Reader)
	require.NotNil(t, view.Summary)

	blocks := view.Summary.Blocks
	require.Len(t, blocks, 3)
	assert.Nil(t, blocks[0].ChosenLabel)
	assert.Equal(t, "Look around", *blocks[1].ChosenLabel)
	assert.Equal(t, "Open the door", *blocks[2].ChosenLabel)
	assert.Equal(t, "A04", blocks[2].NodeID)
	assert.Equal(t, "Daylight.", blocks[2].Text)
	assert.Equal(t, "The end. 3 steps taken.", view.Summary.Status)

	// Nothing is selectable once the summary is shown.
	assert.ErrorIs(t, c.Select(context.Background(), 0), domain.ErrChoiceUnavailable)
}

func TestController_MissingNode(t *testing.T) {
	c := newController(t)
	require.NoError(t, selectLabel(t, c, "LOOK AROUND"))

	err := selectLabel(t, c, "CLIMB OUT")
	var missing *domain.MissingNodeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "A99", missing.NodeID)

	view := c.View()
	assert.Equal(t, domain.PhaseReading, view.Phase)
	require.NotNil(t, view.Reader)
	assert.Equal(t, "A99", view.Reader.NodeID)
	assert.Empty(t, view.Reader.Text)
	assert.Empty(t, view.Reader.Choices)
	assert.Contains(t, view.Reader.Error, "A99")
	assert.NotEmpty(t, view.Reader.Status)

	// The failed entry is not recorded and leaves the reader at a dead end.
	assert.Len(t, c.Path(), 2)
	assert.ErrorIs(t, c.Select(context.Background(), 0), domain.ErrChoiceUnavailable)
}

func TestController_EnterUnknownFromStart(t *testing.T) {
	c := newController(t)

	err := c.Enter(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domain.ErrMissingNode)
	assert.Equal(t, "missing node in NODES table: NOPE", c.View().Reader.Error)
	assert.Len(t, c.Path(), 1)
}

func TestController_MalformedChoice(t *testing.T) {
	c := newController(t)
	require.NoError(t, selectLabel(t, c, "LOOK AROUND"))
	before := c.Path()

	err := selectLabel(t, c, "WAIT")
	var malformed *domain.MalformedChoiceError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "AC04", malformed.ChoiceID)

	view := c.View()
	assert.Equal(t, "A02", view.Reader.NodeID)
	assert.Equal(t, "choice AC04 has no LEADS_TO value", view.Reader.Error)
	assert.Len(t, view.Reader.Choices, 3)
	assert.Equal(t, before, c.Path())

	// The error clears on the next successful entry and the pending label is untouched.
	require.NoError(t, selectLabel(t, c, "OPEN THE DOOR"))
	path := c.Path()
	assert.Equal(t, "Open the door", *path[len(path)-1].ChosenLabel)
}

func TestController_SelectChoiceRejectsForeignChoice(t *testing.T) {
	c := newController(t)

	err := c.SelectChoice(context.Background(), domain.Choice{ID: "AC03", Source: "A02", Destination: "A04", Label: "Open the door"})
	assert.ErrorIs(t, err, domain.ErrChoiceUnavailable)
	assert.Len(t, c.Path(), 1)

	assert.ErrorIs(t, c.Select(context.Background(), 7), domain.ErrChoiceUnavailable)
	assert.ErrorIs(t, c.Select(context.Background(), -1), domain.ErrChoiceUnavailable)
}

func TestController_Restart(t *testing.T) {
	c := newController(t)
	require.NoError(t, selectLabel(t, c, "GO BACK TO SLEEP"))
	require.Equal(t, domain.PhaseSummary, c.Phase())

	require.NoError(t, c.Restart(context.Background()))

	view := c.View()
	assert.Equal(t, domain.PhaseReading, view.Phase)
	assert.Equal(t, "session-2", view.SessionID)
	assert.Equal(t, "A01", view.Reader.NodeID)

	path := c.Path()
	require.Len(t, path, 1)
	assert.Nil(t, path[0].ChosenLabel)
}

func TestController_RoundTrip(t *testing.T) {
	c := newController(t)
	labels := []string{"LOOK AROUND", "OPEN THE DOOR"}
	raw := []string{"Look around", "Open the door"}

	for _, l := range labels {
		require.NoError(t, selectLabel(t, c, l))
	}

	blocks := c.View().Summary.Blocks
	require.Len(t, blocks, len(labels)+1)
	for i := 1; i < len(blocks); i++ {
		assert.Equal(t, raw[i-1], *blocks[i].ChosenLabel)
	}
}

func TestController_StartAtTerminalNode(t *testing.T) {
	c := newController(t, runtime.WithStartNode("A04"))

	view := c.View()
	assert.Equal(t, domain.PhaseSummary, view.Phase)
	require.Len(t, view.Summary.Blocks, 1)
	assert.Equal(t, "The end. 1 step taken.", view.Summary.Status)
}

func TestController_LifecycleHooks(t *testing.T) {
	var entered, selected, missing, ended []string
	restarts := 0

	hooks := domain.LifecycleHooks{
		OnNodeEnter:      func(_ context.Context, e *domain.NodeEvent) { entered = append(entered, e.NodeID) },
		OnChoiceSelected: func(_ context.Context, e *domain.ChoiceEvent) { selected = append(selected, e.ChoiceID) },
		OnMissingNode:    func(_ context.Context, e *domain.NodeEvent) { missing = append(missing, e.NodeID) },
		OnSummary:        func(_ context.Context, e *domain.NodeEvent) { ended = append(ended, e.NodeID) },
		OnRestart:        func(_ context.Context, _ *domain.EventBase) { restarts++ },
	}

	c := newController(t, runtime.WithLifecycleHooks(hooks))
	require.NoError(t, selectLabel(t, c, "LOOK AROUND"))
	_ = selectLabel(t, c, "CLIMB OUT")
	require.NoError(t, c.Restart(context.Background()))
	require.NoError(t, selectLabel(t, c, "GO BACK TO SLEEP"))

	assert.Equal(t, []string{"A01", "A02", "A01", "A03"}, entered)
	assert.Equal(t, []string{"AC01", "AC05", "AC02"}, selected)
	assert.Equal(t, []string{"A99"}, missing)
	assert.Equal(t, []string{"A03"}, ended)
	assert.Equal(t, 1, restarts)
}

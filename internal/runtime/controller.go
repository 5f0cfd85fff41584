package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/branchtale/internal/index"
	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/google/uuid"
)

// deadEndStatus is shown when traversal cannot continue from the requested node.
const deadEndStatus = "Cannot continue from here. Restart to try again."

// Controller holds the traversal position and the accumulated path.
// It is mutated only through Start, Enter, SelectChoice, Select and Restart,
// and is not safe for concurrent use: callers serialise events.
type Controller struct {
	index        *index.Index
	start        string
	logger       *slog.Logger
	hooks        domain.LifecycleHooks
	newSessionID func() string

	sessionID string
	phase     domain.Phase
	current   string
	path      []domain.PathEntry
	pending   *string

	// Error surface of the reader view.
	errMsg  string
	missing string
}

// NewController creates a controller over a loaded index.
// Call Start to enter the start node.
func NewController(idx *index.Index, opts ...ControllerOption) *Controller {
	c := &Controller{
		index:        idx,
		start:        domain.DefaultStartNodeID,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		newSessionID: uuid.NewString,
		phase:        domain.PhaseReading,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartNode returns the canonical entry node id.
func (c *Controller) StartNode() string {
	return c.start
}

// Start begins the first traversal session at the start node.
func (c *Controller) Start(ctx context.Context) error {
	c.reset()
	return c.Enter(ctx, c.start)
}

// Restart discards the current path and begins a new traversal session at the start node.
func (c *Controller) Restart(ctx context.Context) error {
	previous := c.sessionID
	c.reset()
	c.logger.Debug("restart", "session_id", c.sessionID, "previous_session_id", previous)
	if c.hooks.OnRestart != nil {
		c.hooks.OnRestart(ctx, c.event(domain.EventRestart))
	}
	return c.Enter(ctx, c.start)
}

func (c *Controller) reset() {
	c.sessionID = c.newSessionID()
	c.phase = domain.PhaseReading
	c.current = ""
	c.path = nil
	c.pending = nil
	c.clearError()
}

// Enter visits a node: it records a path entry attributed to the pending label
// and either shows the node's choices or, for a terminal node, the summary.
// An unknown id surfaces a *domain.MissingNodeError and leaves the path untouched.
func (c *Controller) Enter(ctx context.Context, nodeID string) error {
	c.clearError()

	node, ok := c.index.Node(nodeID)
	if !ok {
		c.phase = domain.PhaseReading
		c.missing = nodeID
		err := &domain.MissingNodeError{NodeID: nodeID}
		c.errMsg = err.Error()
		c.logger.Warn("missing node", "session_id", c.sessionID, "node_id", nodeID)
		if c.hooks.OnMissingNode != nil {
			c.hooks.OnMissingNode(ctx, c.nodeEvent(domain.EventMissingNode, domain.Node{ID: nodeID}))
		}
		return err
	}

	c.path = append(c.path, domain.PathEntry{
		NodeID:      node.ID,
		Text:        node.Text,
		ChosenLabel: c.pending,
	})
	c.pending = nil
	c.current = node.ID

	c.logger.Debug("enter node", "session_id", c.sessionID, "node_id", node.ID, "type", node.Type, "depth", len(c.path))
	if c.hooks.OnNodeEnter != nil {
		c.hooks.OnNodeEnter(ctx, c.nodeEvent(domain.EventNodeEnter, node))
	}

	if c.index.IsTerminal(node.ID) {
		c.phase = domain.PhaseSummary
		c.logger.Info("traversal finished", "session_id", c.sessionID, "node_id", node.ID, "steps", len(c.path))
		if c.hooks.OnSummary != nil {
			c.hooks.OnSummary(ctx, c.nodeEvent(domain.EventSummary, node))
		}
		return nil
	}

	c.phase = domain.PhaseReading
	return nil
}

// SelectChoice activates a choice of the currently rendered node.
// A choice without destination surfaces a *domain.MalformedChoiceError and changes nothing else.
func (c *Controller) SelectChoice(ctx context.Context, choice domain.Choice) error {
	if !c.offers(choice) {
		return domain.ErrChoiceUnavailable
	}

	if choice.Destination == "" {
		err := &domain.MalformedChoiceError{ChoiceID: choice.ID}
		c.errMsg = err.Error()
		c.logger.Warn("malformed choice", "session_id", c.sessionID, "choice_id", choice.ID, "node_id", c.current)
		return err
	}

	c.logger.Debug("choice selected", "session_id", c.sessionID, "choice_id", choice.ID, "from", c.current, "to", choice.Destination)
	if c.hooks.OnChoiceSelected != nil {
		c.hooks.OnChoiceSelected(ctx, &domain.ChoiceEvent{
			EventBase: *c.event(domain.EventChoiceSelected),
			ChoiceID:  choice.ID,
			From:      c.current,
			To:        choice.Destination,
			Label:     choice.Label,
		})
	}

	label := choice.Label
	c.pending = &label
	return c.Enter(ctx, choice.Destination)
}

// Select activates the choice presented at the given ChoiceView.Index.
func (c *Controller) Select(ctx context.Context, i int) error {
	choices := c.available()
	if i < 0 || i >= len(choices) {
		return domain.ErrChoiceUnavailable
	}
	return c.SelectChoice(ctx, choices[i])
}

// available returns the choices currently on display.
func (c *Controller) available() []domain.Choice {
	if c.phase != domain.PhaseReading || c.missing != "" || c.current == "" {
		return nil
	}
	return c.index.Choices(c.current)
}

func (c *Controller) offers(choice domain.Choice) bool {
	for _, candidate := range c.available() {
		if candidate == choice {
			return true
		}
	}
	return false
}

// Phase returns the current presentation state.
func (c *Controller) Phase() domain.Phase {
	return c.phase
}

// SessionID returns the id of the current traversal session.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Path returns a copy of the visited sequence.
func (c *Controller) Path() []domain.PathEntry {
	out := make([]domain.PathEntry, len(c.path))
	copy(out, c.path)
	return out
}

func (c *Controller) clearError() {
	c.errMsg = ""
	c.missing = ""
}

func (c *Controller) event(t domain.EventType) *domain.EventBase {
	return &domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		SessionID: c.sessionID,
	}
}

func (c *Controller) nodeEvent(t domain.EventType, node domain.Node) *domain.NodeEvent {
	return &domain.NodeEvent{
		EventBase: *c.event(t),
		NodeID:    node.ID,
		NodeType:  node.Type,
		Depth:     len(c.path),
	}
}

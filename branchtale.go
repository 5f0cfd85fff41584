package branchtale

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/branchtale/internal/index"
	"github.com/aretw0/branchtale/internal/runtime"
	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/aretw0/branchtale/pkg/ports"
)

// LoadHint is remediation guidance shown alongside a load failure.
// A common cause is the tables not being reachable from where the reader runs.
const LoadHint = `If the tables live on disk, point --dir at the folder that holds NODES.json and CHOICES.json.
If you are loading them over HTTP, make sure the folder is served, e.g. run: python -m http.server`

// Engine is the high-level entry point for the branchtale library.
// It owns one traversal controller and serialises every event onto it,
// so a single Engine can be shared by concurrent adapters.
type Engine struct {
	mu         sync.Mutex
	controller *runtime.Controller
	index      *index.Index
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
	start      string
	ctrlOpts   []runtime.ControllerOption
}

var _ ports.Reader = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
// It may be given several times; hooks run in registration order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithStartNode configures the canonical entry node (default: "A01").
func WithStartNode(nodeID string) Option {
	return func(e *Engine) {
		e.start = nodeID
	}
}

// WithControllerOptions passes low-level options to the traversal controller.
func WithControllerOptions(opts ...runtime.ControllerOption) Option {
	return func(e *Engine) {
		e.ctrlOpts = append(e.ctrlOpts, opts...)
	}
}

// New loads both tables from src, builds the index and enters the start node.
// A load failure is returned as *domain.LoadError and no Engine is created.
func New(ctx context.Context, src ports.TableSource, opts ...Option) (*Engine, error) {
	if src == nil {
		return nil, fmt.Errorf("table source is required")
	}

	eng := &Engine{start: domain.DefaultStartNodeID}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	idx, err := index.Load(ctx, src)
	if err != nil {
		eng.logger.Error("failed to load story tables", "err", err)
		return nil, err
	}
	eng.index = idx

	stats := idx.Stats()
	eng.logger.Info("story tables loaded", "nodes", stats.Nodes, "choices", stats.Choices, "terminals", stats.Terminals)

	ctrlOpts := []runtime.ControllerOption{
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithStartNode(eng.start),
	}
	ctrlOpts = append(ctrlOpts, eng.ctrlOpts...)
	eng.controller = runtime.NewController(idx, ctrlOpts...)

	// A missing start node is surfaced in the view, not a boot failure.
	if err := eng.controller.Start(ctx); err != nil {
		eng.logger.Warn("start node could not be entered", "node_id", eng.start, "err", err)
	}

	return eng, nil
}

// View returns the declarative description of what to display now.
func (e *Engine) View() domain.View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.controller.View()
}

// Select activates the choice with the given ChoiceView.Index.
// Surfaced errors (missing node, malformed choice) are also reflected in View.
func (e *Engine) Select(ctx context.Context, index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.controller.Select(ctx, index)
}

// SelectChoice activates a choice of the currently rendered node.
func (e *Engine) SelectChoice(ctx context.Context, choice domain.Choice) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.controller.SelectChoice(ctx, choice)
}

// Restart clears the path and re-enters the start node.
func (e *Engine) Restart(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.controller.Restart(ctx)
}

// Path returns the visited sequence of the current traversal session.
func (e *Engine) Path() []domain.PathEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.controller.Path()
}

// Stats returns counts of the loaded index.
func (e *Engine) Stats() domain.IndexStats {
	return e.index.Stats()
}

// StartNode returns the canonical entry node id.
func (e *Engine) StartNode() string {
	return e.start
}

package ports

import (
	"context"

	"github.com/aretw0/branchtale/pkg/domain"
)

// Reader defines the event surface consumed by the outer adapters (terminal, HTTP, MCP).
// Implementations serialise events; adapters may call it from several goroutines.
type Reader interface {
	// View returns the declarative description of what to display now.
	View() domain.View

	// Select activates the choice with the given ChoiceView.Index.
	Select(ctx context.Context, index int) error

	// Restart begins a new traversal session at the start node.
	Restart(ctx context.Context) error

	// Path returns the visited sequence of the current traversal session.
	Path() []domain.PathEntry
}

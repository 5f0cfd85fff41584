package ports

import (
	"context"

	"github.com/aretw0/branchtale/pkg/domain"
)

// TableSource defines how the reader retrieves the raw story tables.
// This allows the delivery mechanism (filesystem, HTTP, Redis, memory) to be decoupled.
type TableSource interface {
	// Fetch returns the raw payload of the table (a JSON array or YAML sequence of records).
	// Failures should be reported as *domain.LoadError naming the table.
	Fetch(ctx context.Context, table domain.Table) ([]byte, error)
}

package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/branchtale/pkg/domain"
)

// Source implements ports.TableSource using in-memory payloads.
type Source struct {
	tables map[domain.Table][]byte
}

// New creates a new Source with the provided raw payloads (JSON or YAML strings).
func New(tables map[domain.Table]string) *Source {
	data := make(map[domain.Table][]byte, len(tables))
	for k, v := range tables {
		data[k] = []byte(v)
	}
	return &Source{tables: data}
}

// NewFromRecords creates a new Source from domain records.
// This handles serialization automatically, improving DX for tests.
func NewFromRecords(nodes []domain.Node, choices []domain.Choice) (*Source, error) {
	rawNodes, err := json.Marshal(nodes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nodes: %w", err)
	}
	rawChoices, err := json.Marshal(choices)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal choices: %w", err)
	}
	return &Source{tables: map[domain.Table][]byte{
		domain.TableNodes:   rawNodes,
		domain.TableChoices: rawChoices,
	}}, nil
}

// Fetch returns a copy of the stored payload.
func (s *Source) Fetch(ctx context.Context, table domain.Table) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.LoadError{Table: table, Err: err}
	}
	content, ok := s.tables[table]
	if !ok {
		return nil, &domain.LoadError{Table: table, Reason: "not found"}
	}
	return append([]byte(nil), content...), nil
}

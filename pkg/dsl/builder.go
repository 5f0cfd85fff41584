package dsl

import (
	"fmt"

	"github.com/aretw0/branchtale/pkg/adapters/memory"
	"github.com/aretw0/branchtale/pkg/domain"
)

// Builder manages the story construction.
type Builder struct {
	order []string
	nodes map[string]*NodeBuilder
}

// New creates a new story builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new node in the story.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node:    domain.Node{ID: id},
		builder: b,
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Records returns the NODES and CHOICES rows in the order they were added.
func (b *Builder) Records() ([]domain.Node, []domain.Choice) {
	nodes := make([]domain.Node, 0, len(b.order))
	var choices []domain.Choice
	for _, id := range b.order {
		nb := b.nodes[id]
		nodes = append(nodes, nb.node)
		choices = append(choices, nb.choices...)
	}
	return nodes, choices
}

// Build compiles the story into an in-memory table source.
func (b *Builder) Build() (*memory.Source, error) {
	nodes, choices := b.Records()
	src, err := memory.NewFromRecords(nodes, choices)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory source: %w", err)
	}
	return src, nil
}

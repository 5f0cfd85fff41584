package index

import (
	"slices"
	"strings"

	"github.com/aretw0/branchtale/pkg/domain"
)

// Index holds the two lookup structures built once after load.
// It is read-only after Build and safe for concurrent readers.
type Index struct {
	nodes   map[string]domain.Node
	choices map[string][]domain.Choice
}

// Build indexes nodes by ID and groups choices by source node.
// Records lacking the key field are discarded. Each group is ordered
// ascending by choice ID, a missing ID sorting as the empty string.
func Build(nodes []domain.Node, choices []domain.Choice) *Index {
	idx := &Index{
		nodes:   make(map[string]domain.Node, len(nodes)),
		choices: make(map[string][]domain.Choice),
	}

	for _, n := range nodes {
		if n.ID == "" {
			continue
		}
		idx.nodes[n.ID] = n
	}

	for _, c := range choices {
		if c.Source == "" {
			continue
		}
		idx.choices[c.Source] = append(idx.choices[c.Source], c)
	}

	for _, group := range idx.choices {
		slices.SortStableFunc(group, func(a, b domain.Choice) int {
			return strings.Compare(a.ID, b.ID)
		})
	}

	return idx
}

// Node returns the node with the given ID.
func (i *Index) Node(id string) (domain.Node, bool) {
	n, ok := i.nodes[id]
	return n, ok
}

// Choices returns the ordered outgoing choices of a node.
// The slice is a copy; nil means the node is terminal.
func (i *Index) Choices(id string) []domain.Choice {
	group, ok := i.choices[id]
	if !ok {
		return nil
	}
	return slices.Clone(group)
}

// IsTerminal reports whether the node offers no choices.
func (i *Index) IsTerminal(id string) bool {
	_, ok := i.choices[id]
	return !ok
}

// Stats counts nodes, indexed choices and terminal nodes.
func (i *Index) Stats() domain.IndexStats {
	s := domain.IndexStats{Nodes: len(i.nodes)}
	for _, group := range i.choices {
		s.Choices += len(group)
	}
	for id := range i.nodes {
		if i.IsTerminal(id) {
			s.Terminals++
		}
	}
	return s
}

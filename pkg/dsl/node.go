package dsl

import (
	"fmt"

	"github.com/aretw0/branchtale/pkg/domain"
)

// NodeBuilder provides a fluent API for configuring a node and its choices.
type NodeBuilder struct {
	node    domain.Node
	choices []domain.Choice
	builder *Builder
}

// Text sets the narrative text of the node.
func (n *NodeBuilder) Text(text string) *NodeBuilder {
	n.node.Text = text
	return n
}

// Type sets the informational NODE_TYPE.
func (n *NodeBuilder) Type(nodeType string) *NodeBuilder {
	n.node.Type = nodeType
	return n
}

// Choice adds an option leading to target.
// The choice ID is derived from the node ID so that options keep the order they were added in.
func (n *NodeBuilder) Choice(label, target string) *NodeBuilder {
	id := fmt.Sprintf("%s-C%02d", n.node.ID, len(n.choices)+1)
	return n.ChoiceWithID(id, label, target)
}

// ChoiceWithID adds an option with an explicit CHOICE_ID.
// Display order follows the IDs, not the call order.
func (n *NodeBuilder) ChoiceWithID(id, label, target string) *NodeBuilder {
	n.choices = append(n.choices, domain.Choice{
		ID:          id,
		Source:      n.node.ID,
		Label:       label,
		Destination: target,
	})
	return n
}

// Terminal removes every choice, making the node an ending.
func (n *NodeBuilder) Terminal() *NodeBuilder {
	n.choices = nil
	return n
}

// Build returns the underlying node and its choices.
func (n *NodeBuilder) Build() (domain.Node, []domain.Choice) {
	return n.node, append([]domain.Choice(nil), n.choices...)
}

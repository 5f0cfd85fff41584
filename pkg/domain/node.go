package domain

// Node is one narrative beat of the story.
// Nodes are immutable once loaded.
type Node struct {
	ID string `json:"NODE_ID" yaml:"NODE_ID" mapstructure:"NODE_ID"`
	// Type is an informational category label (e.g. "scene", "ending").
	Type string `json:"NODE_TYPE,omitempty" yaml:"NODE_TYPE,omitempty" mapstructure:"NODE_TYPE"`
	// Text is the body shown to the reader.
	Text string `json:"TEXT,omitempty" yaml:"TEXT,omitempty" mapstructure:"TEXT"`
}

// Choice is a labelled directed edge between two nodes.
type Choice struct {
	// ID is only used to order the choices offered by a node.
	ID          string `json:"CHOICE_ID,omitempty" yaml:"CHOICE_ID,omitempty" mapstructure:"CHOICE_ID"`
	Source      string `json:"PARENT_NODE" yaml:"PARENT_NODE" mapstructure:"PARENT_NODE"`
	Label       string `json:"OPTION_LABEL,omitempty" yaml:"OPTION_LABEL,omitempty" mapstructure:"OPTION_LABEL"`
	Destination string `json:"LEADS_TO,omitempty" yaml:"LEADS_TO,omitempty" mapstructure:"LEADS_TO"`
}

// PathEntry records one visited node of the current traversal session.
type PathEntry struct {
	NodeID string `json:"node_id"`
	Text   string `json:"text"`
	// ChosenLabel is the label of the choice that led here, nil for the start node.
	ChosenLabel *string `json:"chosen_label"`
}

package domain

// Phase is the presentation state of a traversal.
type Phase string

const (
	// PhaseReading shows the current node and its choices.
	PhaseReading Phase = "reading"
	// PhaseSummary shows the full path after a terminal node.
	PhaseSummary Phase = "summary"
)

// NoLabel is presented in place of an empty choice label.
const NoLabel = "(NO LABEL)"

// View is a declarative description of what the host should display.
// Exactly one of Reader or Summary is set, matching Phase.
type View struct {
	Phase     Phase        `json:"phase"`
	SessionID string       `json:"session_id"`
	Reader    *ReaderView  `json:"reader,omitempty"`
	Summary   *SummaryView `json:"summary,omitempty"`
}

// ReaderView populates the interactive regions of the reader.
type ReaderView struct {
	NodeID   string       `json:"node_id"`
	NodeType string       `json:"node_type,omitempty"`
	Text     string       `json:"text"`
	Choices  []ChoiceView `json:"choices"`
	Status   string       `json:"status,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// ChoiceView is one activatable option.
// Index is the handle the host passes back to select it.
type ChoiceView struct {
	Index    int    `json:"index"`
	ChoiceID string `json:"choice_id"`
	Label    string `json:"label"`
}

// SummaryView is the terminal recap of the traversal.
type SummaryView struct {
	Blocks []SummaryBlock `json:"blocks"`
	Status string         `json:"status,omitempty"`
}

// SummaryBlock presents one path entry.
// When ChosenLabel is set it is rendered first, as a "chosen option" marker.
type SummaryBlock struct {
	NodeID      string  `json:"node_id"`
	ChosenLabel *string `json:"chosen_label"`
	Text        string  `json:"text"`
}

// IndexStats summarises the loaded tables for logs and introspection.
type IndexStats struct {
	Nodes     int `json:"nodes"`
	Choices   int `json:"choices"`
	Terminals int `json:"terminals"`
}

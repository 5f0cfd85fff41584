package runtime

import (
	"strings"

	"github.com/aretw0/branchtale/pkg/domain"
)

// View projects the current state into the declarative view model.
// It does not mutate the controller.
func (c *Controller) View() domain.View {
	v := domain.View{
		Phase:     c.phase,
		SessionID: c.sessionID,
	}
	if c.phase == domain.PhaseSummary {
		v.Summary = BuildSummary(c.path)
		return v
	}
	v.Reader = c.readerView()
	return v
}

func (c *Controller) readerView() *domain.ReaderView {
	if c.missing != "" {
		return &domain.ReaderView{
			NodeID:  c.missing,
			Choices: []domain.ChoiceView{},
			Status:  deadEndStatus,
			Error:   c.errMsg,
		}
	}

	rv := &domain.ReaderView{
		NodeID:  c.current,
		Choices: []domain.ChoiceView{},
		Error:   c.errMsg,
	}
	if node, ok := c.index.Node(c.current); ok {
		rv.NodeType = node.Type
		rv.Text = node.Text
	}
	for i, choice := range c.available() {
		rv.Choices = append(rv.Choices, domain.ChoiceView{
			Index:    i,
			ChoiceID: choice.ID,
			Label:    displayLabel(choice.Label),
		})
	}
	return rv
}

// displayLabel normalises a choice label for presentation.
func displayLabel(label string) string {
	if strings.TrimSpace(label) == "" {
		return domain.NoLabel
	}
	return strings.ToUpper(label)
}

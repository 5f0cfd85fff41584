package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/branchtale/pkg/domain"
)

// Presenter draws a view to the terminal.
type Presenter interface {
	Present(w io.Writer, view domain.View) error
}

// ContentRenderer transforms node text before display (e.g. markdown to ANSI).
type ContentRenderer func(string) (string, error)

// PlainPresenter writes views as unstyled text.
type PlainPresenter struct {
	Renderer ContentRenderer
}

// Present implements Presenter.
func (p PlainPresenter) Present(w io.Writer, view domain.View) error {
	var b strings.Builder
	switch view.Phase {
	case domain.PhaseSummary:
		if view.Summary == nil {
			return nil
		}
		for _, block := range view.Summary.Blocks {
			if block.ChosenLabel != nil {
				fmt.Fprintf(&b, "> Chosen: %s\n", *block.ChosenLabel)
			}
			b.WriteString(p.render(block.Text))
			b.WriteString("\n\n")
		}
		if view.Summary.Status != "" {
			fmt.Fprintln(&b, view.Summary.Status)
		}
	default:
		rv := view.Reader
		if rv == nil {
			return nil
		}
		header := "[" + rv.NodeID + "]"
		if rv.NodeType != "" {
			header += " (" + rv.NodeType + ")"
		}
		fmt.Fprintln(&b, header)
		if rv.Text != "" {
			b.WriteString(p.render(rv.Text))
			b.WriteString("\n")
		}
		if len(rv.Choices) > 0 {
			b.WriteString("\n")
		}
		for _, c := range rv.Choices {
			fmt.Fprintf(&b, "  %d) %s\n", c.Index+1, c.Label)
		}
		if rv.Error != "" {
			fmt.Fprintf(&b, "Error: %s\n", rv.Error)
		}
		if rv.Status != "" {
			fmt.Fprintln(&b, rv.Status)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (p PlainPresenter) render(text string) string {
	if p.Renderer == nil {
		return strings.TrimSpace(text)
	}
	out, err := p.Renderer(text)
	if err != nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(out)
}

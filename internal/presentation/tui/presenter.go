package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/muesli/termenv"
)

const (
	colorHeader = "#818cf8"
	colorChoice = "#e879f9"
	colorChosen = "#c084fc"
	colorError  = "#fb7185"
	colorStatus = "#a78bfa"
)

// Presenter draws views with colours and markdown-rendered node text.
type Presenter struct {
	Profile  termenv.Profile
	Renderer func(string) (string, error)
}

// NewPresenter creates a Presenter for the detected terminal colour profile.
// A nil renderer leaves node text untouched.
func NewPresenter(renderer func(string) (string, error)) *Presenter {
	return &Presenter{
		Profile:  termenv.ColorProfile(),
		Renderer: renderer,
	}
}

// Present draws the view to w.
func (p *Presenter) Present(w io.Writer, view domain.View) error {
	var b strings.Builder
	switch view.Phase {
	case domain.PhaseSummary:
		p.summary(&b, view.Summary)
	default:
		p.reader(&b, view.Reader)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (p *Presenter) reader(b *strings.Builder, rv *domain.ReaderView) {
	if rv == nil {
		return
	}
	b.WriteString(p.style(rv.NodeID, colorHeader).Bold().String())
	if rv.NodeType != "" {
		b.WriteString(" " + p.style(rv.NodeType, colorHeader).Faint().String())
	}
	b.WriteString("\n")
	if rv.Text != "" {
		b.WriteString(p.body(rv.Text))
		b.WriteString("\n")
	}
	if len(rv.Choices) > 0 {
		b.WriteString("\n")
	}
	for _, c := range rv.Choices {
		fmt.Fprintf(b, "  %s %s\n", p.style(fmt.Sprintf("%d)", c.Index+1), colorChoice).Bold(), c.Label)
	}
	if rv.Error != "" {
		b.WriteString(p.style("! "+rv.Error, colorError).Bold().String() + "\n")
	}
	if rv.Status != "" {
		b.WriteString(p.style(rv.Status, colorStatus).Italic().String() + "\n")
	}
}

func (p *Presenter) summary(b *strings.Builder, sv *domain.SummaryView) {
	if sv == nil {
		return
	}
	for _, block := range sv.Blocks {
		if block.ChosenLabel != nil {
			b.WriteString(p.style("» "+*block.ChosenLabel, colorChosen).Bold().Underline().String() + "\n")
		}
		b.WriteString(p.body(block.Text))
		b.WriteString("\n\n")
	}
	if sv.Status != "" {
		b.WriteString(p.style(sv.Status, colorStatus).Italic().String() + "\n")
	}
}

func (p *Presenter) body(text string) string {
	if p.Renderer != nil {
		if out, err := p.Renderer(text); err == nil {
			return strings.TrimSpace(out)
		}
	}
	return strings.TrimSpace(text)
}

func (p *Presenter) style(s, color string) termenv.Style {
	return p.Profile.String(s).Foreground(p.Profile.Color(color))
}

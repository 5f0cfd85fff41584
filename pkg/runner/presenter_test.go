package runner

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainPresenter_Reader(t *testing.T) {
	view := domain.View{
		Phase: domain.PhaseReading,
		Reader: &domain.ReaderView{
			NodeID: "A01",
			Text:   "  Hello  ",
			Choices: []domain.ChoiceView{
				{Index: 0, ChoiceID: "AC01", Label: "GO"},
				{Index: 1, ChoiceID: "AC02", Label: domain.NoLabel},
			},
			Error: "choice AC09 has no LEADS_TO value",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, PlainPresenter{}.Present(&buf, view))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[A01]\nHello\n"))
	assert.Contains(t, out, "  1) GO\n")
	assert.Contains(t, out, "  2) (NO LABEL)\n")
	assert.Contains(t, out, "Error: choice AC09 has no LEADS_TO value\n")
}

func TestPlainPresenter_Summary(t *testing.T) {
	label := "Look around"
	view := domain.View{
		Phase: domain.PhaseSummary,
		Summary: &domain.SummaryView{
			Blocks: []domain.SummaryBlock{
				{NodeID: "A01", Text: "Start"},
				{NodeID: "A02", ChosenLabel: &label, Text: "End"},
			},
			Status: "The end. 2 steps taken.",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, PlainPresenter{}.Present(&buf, view))

	assert.Equal(t, "Start\n\n> Chosen: Look around\nEnd\n\nThe end. 2 steps taken.\n", buf.String())
}

func TestPlainPresenter_RendererFallback(t *testing.T) {
	p := PlainPresenter{Renderer: func(string) (string, error) { return "", errors.New("boom") }}
	view := domain.View{Phase: domain.PhaseReading, Reader: &domain.ReaderView{NodeID: "A01", Text: "raw"}}

	var buf bytes.Buffer
	require.NoError(t, p.Present(&buf, view))
	assert.Contains(t, buf.String(), "raw")
}

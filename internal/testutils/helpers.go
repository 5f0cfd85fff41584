package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/branchtale/pkg/adapters/memory"
	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/stretchr/testify/require"
)

// StoryNodes is a small story shared by package tests.
//
//	A01 --"Look around"--> A02 --"Open the door"--> A04 (end)
//	A01 --"Go back to sleep"--> A03 (end)
//	A02 --"Climb out"--> A99 (missing)
func StoryNodes() []domain.Node {
	return []domain.Node{
		{ID: "A01", Type: "scene", Text: "You wake up in a dark room."},
		{ID: "A02", Type: "scene", Text: "A door and a window."},
		{ID: "A03", Type: "ending", Text: "You sleep forever."},
		{ID: "A04", Type: "ending", Text: "Freedom."},
	}
}

// StoryChoices pairs with StoryNodes. Records are deliberately unsorted.
func StoryChoices() []domain.Choice {
	return []domain.Choice{
		{ID: "AC02", Source: "A01", Label: "Go back to sleep", Destination: "A03"},
		{ID: "AC01", Source: "A01", Label: "Look around", Destination: "A02"},
		{ID: "AC05", Source: "A02", Label: "Climb out", Destination: "A99"},
		{ID: "AC03", Source: "A02", Label: "Open the door", Destination: "A04"},
	}
}

// NewStorySource returns an in-memory source holding the shared story.
func NewStorySource(t *testing.T) *memory.Source {
	t.Helper()

	src, err := memory.NewFromRecords(StoryNodes(), StoryChoices())
	require.NoError(t, err, "Failed to build story source")
	return src
}

// WriteStoryDir writes the shared story as NODES.json and CHOICES.json
// into a temporary directory and returns its path.
func WriteStoryDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	WriteTable(t, dir, domain.TableNodes, StoryNodes())
	WriteTable(t, dir, domain.TableChoices, StoryChoices())
	return dir
}

// WriteTable marshals records as JSON into dir under the table's file name.
func WriteTable(t *testing.T, dir string, table domain.Table, records any) {
	t.Helper()

	raw, err := json.Marshal(records)
	require.NoError(t, err, "Failed to marshal %s", table)
	err = os.WriteFile(filepath.Join(dir, table.FileName("")), raw, 0o644)
	require.NoError(t, err, "Failed to write %s", table)
}

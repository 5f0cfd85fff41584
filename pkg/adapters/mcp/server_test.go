package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/branchtale"
	"github.com/aretw0/branchtale/internal/testutils"
	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	eng, err := branchtale.New(context.Background(), testutils.NewStorySource(t))
	require.NoError(t, err)
	return NewServer(eng, nil)
}

func TestHandleView(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.handleView(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.View.Reader)
	assert.Equal(t, "A01", resp.View.Reader.NodeID)
	assert.Len(t, resp.View.Reader.Choices, 2)
}

func TestHandleSelectChoice(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.handleSelectChoice(ctx, mcp.CallToolRequest{}, SelectArgs{Index: 0})
	require.NoError(t, err)
	require.NotNil(t, resp.View.Reader)
	assert.Equal(t, "A02", resp.View.Reader.NodeID)

	// A99 is not in the NODES table; the error is part of the response.
	resp, err = s.handleSelectChoice(ctx, mcp.CallToolRequest{}, SelectArgs{Index: 1})
	require.NoError(t, err)
	assert.Equal(t, "missing node in NODES table: A99", resp.Error)
	assert.Equal(t, "A99", resp.View.Reader.NodeID)

	_, err = s.handleSelectChoice(ctx, mcp.CallToolRequest{}, SelectArgs{Index: 0})
	assert.ErrorIs(t, err, domain.ErrChoiceUnavailable)
}

func TestHandleRestart(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.handleSelectChoice(ctx, mcp.CallToolRequest{}, SelectArgs{Index: 1})
	require.NoError(t, err)

	resp, err := s.handleRestart(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseReading, resp.View.Phase)
	assert.Equal(t, "A01", resp.View.Reader.NodeID)
}

func TestReadPath(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.handleSelectChoice(ctx, mcp.CallToolRequest{}, SelectArgs{Index: 1})
	require.NoError(t, err)

	contents, err := s.readPath(ctx, mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, PathURI, text.URI)

	var path []domain.PathEntry
	require.NoError(t, json.Unmarshal([]byte(text.Text), &path))
	require.Len(t, path, 2)
	assert.Nil(t, path[0].ChosenLabel)
	assert.Equal(t, "Go back to sleep", *path[1].ChosenLabel)
}

func TestReadView(t *testing.T) {
	s := newTestServer(t)

	contents, err := s.readView(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	text := contents[0].(mcp.TextResourceContents)
	assert.Contains(t, text.Text, `"phase":"reading"`)
}

package index_test

import (
	"testing"

	"github.com/aretw0/branchtale/internal/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNodes_JSON(t *testing.T) {
	nodes, err := index.DecodeNodes([]byte(`[
		{"NODE_ID": "A01", "NODE_TYPE": "scene", "TEXT": "You wake up."},
		{"NODE_ID": 101, "TEXT": "Numeric id"},
		{"TEXT": "no id", "EXTRA": true}
	]`))
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	assert.Equal(t, "A01", nodes[0].ID)
	assert.Equal(t, "scene", nodes[0].Type)
	assert.Equal(t, "You wake up.", nodes[0].Text)
	assert.Equal(t, "101", nodes[1].ID)
	assert.Empty(t, nodes[2].ID)
}

func TestDecodeChoices_YAML(t *testing.T) {
	choices, err := index.DecodeChoices([]byte(`
- CHOICE_ID: AC01
  PARENT_NODE: A01
  OPTION_LABEL: Look around
  LEADS_TO: A02
- PARENT_NODE: A01
  OPTION_LABEL: Wait
`))
	require.NoError(t, err)
	require.Len(t, choices, 2)

	assert.Equal(t, "AC01", choices[0].ID)
	assert.Equal(t, "A01", choices[0].Source)
	assert.Equal(t, "A02", choices[0].Destination)
	assert.Equal(t, "Look around", choices[0].Label)
	assert.Empty(t, choices[1].Destination)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Null", "null"},
		{"Object Instead Of Array", `{"NODE_ID": "A01"}`},
		{"Array Of Scalars", `[1, 2, 3]`},
		{"Truncated", `[{"NODE_ID": "A01"`},
		{"Nested Value", `[{"NODE_ID": {"nested": true}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := index.DecodeNodes([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	nodes, err := index.DecodeNodes([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

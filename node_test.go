package webreduce_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/webreduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		node    *webreduce.Node
		wantErr bool
	}{
		{
			name: "text leaf",
			node: &webreduce.Node{Text: "hello"},
		},
		{
			name: "structural node",
			node: &webreduce.Node{Tag: "p", Children: []webreduce.Content{
				&webreduce.Node{Text: "hello"},
			}},
		},
		{
			name: "anchor with href and subpage",
			node: &webreduce.Node{
				Tag:     "a",
				Href:    "/next",
				Subpage: &webreduce.Node{Tag: "html"},
			},
		},
		{
			name:    "empty node",
			node:    &webreduce.Node{},
			wantErr: true,
		},
		{
			name: "text leaf with children",
			node: &webreduce.Node{Text: "hello", Children: []webreduce.Content{
				&webreduce.Node{Text: "nested"},
			}},
			wantErr: true,
		},
		{
			name:    "href on a non-anchor",
			node:    &webreduce.Node{Tag: "p", Href: "/x"},
			wantErr: true,
		},
		{
			name:    "subpage on a non-anchor",
			node:    &webreduce.Node{Tag: "p", Subpage: &webreduce.Node{Tag: "html"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.node.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, webreduce.EINVALID, webreduce.ErrorCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNode_JSON(t *testing.T) {
	t.Parallel()

	t.Run("omits absent fields", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&webreduce.Node{Text: "hello"})

		require.NoError(t, err)
		assert.Equal(t, `{"text":"hello"}`, string(data))
	})

	t.Run("serializes a full tree on a single line", func(t *testing.T) {
		t.Parallel()

		tree := &webreduce.Node{
			Tag: "html",
			Children: []webreduce.Content{
				&webreduce.Node{Tag: "h1", Children: []webreduce.Content{
					&webreduce.Node{Text: "Title"},
				}},
				&webreduce.Node{
					Tag:  "a",
					Href: "/next",
					Children: []webreduce.Content{
						&webreduce.Node{Text: "next"},
					},
					Subpage: &webreduce.Node{Tag: "html"},
				},
			},
		}

		data, err := json.Marshal(tree)

		require.NoError(t, err)
		assert.Equal(t,
			`{"tag":"html","children":[{"tag":"h1","children":[{"text":"Title"}]},{"tag":"a","href":"/next","children":[{"text":"next"}],"subpage":{"tag":"html"}}]}`,
			string(data))
		assert.NotContains(t, string(data), "\n")
	})

	t.Run("serializes an empty table as an empty object", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&webreduce.Table{})

		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("serializes table headers and rows", func(t *testing.T) {
		t.Parallel()

		table := &webreduce.Table{
			Headers: []string{"Name", "Age"},
			Rows: []map[string]string{
				{"Name": "Ann", "Age": "30"},
			},
		}

		data, err := json.Marshal(table)

		require.NoError(t, err)
		assert.Equal(t, `{"headers":["Name","Age"],"rows":[{"Age":"30","Name":"Ann"}]}`, string(data))
	})
}

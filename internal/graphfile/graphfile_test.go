package graphfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsearch/internal/graphfile"
)

func TestSample(t *testing.T) {
	doc := graphfile.Sample()

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "12"}, doc.VertexIDs())
	assert.Len(t, doc.Edges, 12)
	assert.Equal(t, []graphfile.Edge{{"9", "11"}}, doc.SkippedEdges())

	g := doc.Graph()
	assert.Equal(t, 11, g.VertexCount())
	assert.Equal(t, 11, g.EdgeCount())
	assert.True(t, g.HasEdge("9", "10"))
	assert.False(t, g.HasVertex("11"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantV   []string
		wantE   int
	}{
		{
			name:  "mixed scalars",
			input: "vertices: [a, 2, \"3\"]\nedges: [[a, 2], [2, 3]]\n",
			wantV: []string{"a", "2", "3"},
			wantE: 2,
		},
		{
			name:  "no edges",
			input: "vertices: [x]\n",
			wantV: []string{"x"},
		},
		{name: "empty input", input: "", wantErr: graphfile.ErrEmptyDocument},
		{name: "no vertices", input: "edges: [[1, 2]]\n", wantErr: graphfile.ErrEmptyDocument},
		{name: "edge of three", input: "vertices: [1, 2, 3]\nedges: [[1, 2, 3]]\n", wantErr: graphfile.ErrBadEdge},
		{name: "edge not a list", input: "vertices: [1]\nedges: [1]\n", wantErr: graphfile.ErrBadEdge},
		{name: "nested endpoint", input: "vertices: [1]\nedges: [[1, [2]]]\n", wantErr: graphfile.ErrBadEdge},
		{name: "map endpoint", input: "vertices: [1]\nedges: [[1, {id: 2}]]\n", wantErr: graphfile.ErrBadVertex},
		{name: "vertex map", input: "vertices: [{id: 1}]\n", wantErr: graphfile.ErrBadVertex},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := graphfile.Parse([]byte(tc.input))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, doc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, doc.VertexIDs())
			assert.Len(t, doc.Edges, tc.wantE)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := graphfile.Parse([]byte("vertices: [1]\nweights: [3]\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vertices: [A, B]\nedges: [[A, B], [B, C]]\n"), 0o600))

	doc, err := graphfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []graphfile.Edge{{"B", "C"}}, doc.SkippedEdges())
	assert.True(t, doc.Graph().HasEdge("B", "A"))

	_, err = graphfile.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

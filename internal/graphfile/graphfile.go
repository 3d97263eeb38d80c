// Package graphfile reads graph descriptions from YAML documents:
//
//	vertices: [1, 2, 3]
//	edges:
//	  - [1, 2]
//	  - [2, 3]
//
// Vertices are kept as strings whatever their YAML scalar type, so "1"
// and 1 name the same vertex. Edges naming an unlisted vertex are kept in
// the document and dropped by core.New when the graph is built.
package graphfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphsearch/core"
)

//go:embed sample.yaml
var sampleYAML []byte

// Vertex is a vertex identifier decoded from any YAML scalar.
type Vertex string

// UnmarshalYAML accepts any scalar node and keeps its literal text.
func (v *Vertex) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w (line %d)", ErrBadVertex, node.Line)
	}
	*v = Vertex(node.Value)

	return nil
}

// Edge is an unordered vertex pair decoded from a two-element sequence.
type Edge [2]Vertex

// UnmarshalYAML accepts exactly `[u, v]`.
func (e *Edge) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return fmt.Errorf("%w (line %d)", ErrBadEdge, node.Line)
	}
	for i, item := range node.Content {
		if err := item.Decode(&e[i]); err != nil {
			return fmt.Errorf("%w (line %d): %w", ErrBadEdge, node.Line, err)
		}
	}

	return nil
}

// Document is a decoded graph description.
type Document struct {
	Vertices []Vertex `yaml:"vertices"`
	Edges    []Edge   `yaml:"edges"`
}

// Parse decodes and validates a YAML graph document. Unknown top-level
// keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read %q: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Sample returns the embedded demonstration graph: vertices 1..10 and 12,
// with an edge 9-11 that names a missing vertex.
func Sample() *Document {
	doc, err := Parse(sampleYAML)
	if err != nil {
		panic(fmt.Sprintf("graphfile: embedded sample: %v", err))
	}

	return doc
}

// Validate reports ErrEmptyDocument when no vertices are listed.
func (d *Document) Validate() error {
	if len(d.Vertices) == 0 {
		return ErrEmptyDocument
	}

	return nil
}

// VertexIDs returns the listed vertices in document order, repeats included.
func (d *Document) VertexIDs() []string {
	out := make([]string, len(d.Vertices))
	for i, v := range d.Vertices {
		out[i] = string(v)
	}

	return out
}

// Graph builds a core.Graph from the document with core.New semantics.
func (d *Document) Graph() *core.Graph[string] {
	edges := make([]core.Edge[string], len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = core.Edge[string]{U: string(e[0]), V: string(e[1])}
	}

	return core.New(d.VertexIDs(), edges)
}

// SkippedEdges returns the edges that name at least one unlisted vertex;
// building the graph ignores them.
func (d *Document) SkippedEdges() []Edge {
	known := core.NewSet(d.VertexIDs()...)
	var out []Edge
	for _, e := range d.Edges {
		if !known.Has(string(e[0])) || !known.Has(string(e[1])) {
			out = append(out, e)
		}
	}

	return out
}

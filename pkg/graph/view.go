// Package graph builds graph views over extracted DrugBank tables.
//
// Views are backed by an lvlath core.Graph. Vertex IDs are namespaced by
// node kind ("drug:DB00001", "pathway:Lepirudin Action Pathway") so that
// a synonym and a drug sharing a name stay distinct.
package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/core"
)

// ErrNotFound is returned when the requested drug or gene has no rows.
var ErrNotFound = errors.New("not found")

type Kind string

const (
	KindDrug       Kind = "drug"
	KindSynonym    Kind = "synonym"
	KindPathway    Kind = "pathway"
	KindGene       Kind = "gene"
	KindProduct    Kind = "product"
	KindTarget     Kind = "target"
	KindAminoAcids Kind = "amino_acids"
)

// NodeID returns the vertex ID of a node of kind k.
func NodeID(k Kind, key string) string {
	return string(k) + ":" + key
}

type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Kind  Kind   `json:"kind"`
}

type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// View is a labelled graph.
type View struct {
	Name     string
	Directed bool
	g        *core.Graph
	nodes    map[string]Node
}

func newView(name string, directed bool) *View {
	return &View{
		Name:     name,
		Directed: directed,
		g:        core.NewGraph(core.WithDirected(directed)),
		nodes:    make(map[string]Node),
	}
}

func (v *View) addNode(k Kind, key, label string) (string, error) {
	id := NodeID(k, key)
	if err := v.g.AddVertex(id); err != nil {
		return "", fmt.Errorf("add %s node %q: %w", k, key, err)
	}
	if _, ok := v.nodes[id]; !ok {
		v.nodes[id] = Node{ID: id, Label: label, Kind: k}
	}
	return id, nil
}

// addEdge links two existing nodes once.
func (v *View) addEdge(from, to string) error {
	if v.g.HasEdge(from, to) {
		return nil
	}
	if _, err := v.g.AddEdge(from, to, 0); err != nil {
		return fmt.Errorf("add edge %s -> %s: %w", from, to, err)
	}
	return nil
}

// Graph exposes the underlying lvlath graph.
func (v *View) Graph() *core.Graph {
	return v.g
}

// Node returns the node with the given vertex ID.
func (v *View) Node(id string) (Node, bool) {
	n, ok := v.nodes[id]
	return n, ok
}

// Nodes returns every node ordered by ID.
func (v *View) Nodes() []Node {
	ids := v.g.Vertices()
	nodes := make([]Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, v.nodes[id])
	}
	return nodes
}

// Edges returns every edge ordered by endpoints.
func (v *View) Edges() []Edge {
	raw := v.g.Edges()
	edges := make([]Edge, 0, len(raw))
	for _, e := range raw {
		edges = append(edges, Edge{From: e.From, To: e.To})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// NodesOfKind returns the nodes of kind k ordered by ID.
func (v *View) NodesOfKind(k Kind) []Node {
	var nodes []Node
	for _, n := range v.Nodes() {
		if n.Kind == k {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (v *View) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name     string `json:"name"`
		Directed bool   `json:"directed"`
		Nodes    []Node `json:"nodes"`
		Edges    []Edge `json:"edges"`
	}{
		Name:     v.Name,
		Directed: v.Directed,
		Nodes:    v.Nodes(),
		Edges:    v.Edges(),
	})
}

// Package graph holds an abstract node/edge structure handed to Graphviz for
// rendering.
package graph

import "github.com/google/uuid"

type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

type Graph struct {
	Name  string `json:"name"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

func New(name string) *Graph { return &Graph{Name: name} }

func (g *Graph) AddNode(id, label string) {
	g.Nodes = append(g.Nodes, Node{ID: id, Label: label})
}

func (g *Graph) AddEdge(from, to, label string) {
	g.Edges = append(g.Edges, Edge{From: from, To: to, Label: label})
}

// Children returns the ids reachable over one edge from id, in insertion order.
func (g *Graph) Children(id string) []string {
	var out []string
	for _, e := range g.Edges {
		if e.From == id {
			out = append(out, e.To)
		}
	}
	return out
}

// IDs hands out one random id per distinct key. Keying by pointer gives every
// node instance its own id even when labels repeat.
type IDs[K comparable] struct {
	ids map[K]string
}

func NewIDs[K comparable]() *IDs[K] {
	return &IDs[K]{ids: make(map[K]string)}
}

// Of returns the id for k and reports whether it was assigned by this call.
func (s *IDs[K]) Of(k K) (string, bool) {
	if id, ok := s.ids[k]; ok {
		return id, false
	}
	id := uuid.NewString()
	s.ids[k] = id
	return id, true
}

// Package graph provides the undirected arena graph container backing the
// region and border graphs.
//
// Nodes and edges live in contiguous arenas and are referenced by integer
// indices, never by pointers. IDs are dense: valid node IDs are
// [0, NodeCount) and valid edge IDs are [0, EdgeCount), which makes index
// iteration the canonical way to visit a graph. Payload types are caller
// chosen; the container never inspects them.
package graph

import "errors"

// NodeID identifies a node inside a Graph.
type NodeID int32

// EdgeID identifies an edge inside a Graph.
type EdgeID int32

const (
	// InvalidNode is the ID of no node.
	InvalidNode NodeID = -1

	// InvalidEdge is the ID of no edge.
	InvalidEdge EdgeID = -1
)

var (
	// ErrNodeOutOfRange indicates an operation referenced a non-existent node.
	ErrNodeOutOfRange = errors.New("graph: node ID out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrParallelEdge indicates an edge was attempted between two nodes
	// already connected.
	ErrParallelEdge = errors.New("graph: parallel edge not allowed")
)

type node[N any] struct {
	data     N
	incident []EdgeID
}

type edge[E any] struct {
	a, b NodeID
	data E
}

// Graph is an undirected graph with node payloads of type N and edge
// payloads of type E. The zero value is an empty graph ready for use.
//
// At most one edge may exist between any unordered pair of nodes, and
// self-loops are rejected; both properties are what the dual-graph passes
// rely on when they look edges up by endpoint pair.
type Graph[N, E any] struct {
	nodes []node[N]
	edges []edge[E]
}

// New returns an empty graph with arenas pre-sized for the given node and
// edge counts.
func New[N, E any](nodeCap, edgeCap int) *Graph[N, E] {
	return &Graph[N, E]{
		nodes: make([]node[N], 0, nodeCap),
		edges: make([]edge[E], 0, edgeCap),
	}
}

// NodeCount returns the number of nodes.
func (g *Graph[N, E]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph[N, E]) EdgeCount() int {
	return len(g.edges)
}

// AddNode appends a node to the arena and returns its ID.
func (g *Graph[N, E]) AddNode(data N) NodeID {
	g.nodes = append(g.nodes, node[N]{data: data})
	return NodeID(len(g.nodes) - 1)
}

// Node returns a pointer to the payload of node id, valid until the next
// AddNode. It panics if id is out of range.
func (g *Graph[N, E]) Node(id NodeID) *N {
	return &g.nodes[id].data
}

// AddEdge connects a and b and returns the new edge ID. It fails with
// ErrLoopNotAllowed if a == b, ErrParallelEdge if the two nodes are already
// connected and ErrNodeOutOfRange if either endpoint does not exist.
func (g *Graph[N, E]) AddEdge(a, b NodeID, data E) (EdgeID, error) {
	if a < 0 || int(a) >= len(g.nodes) || b < 0 || int(b) >= len(g.nodes) {
		return InvalidEdge, ErrNodeOutOfRange
	}
	if a == b {
		return InvalidEdge, ErrLoopNotAllowed
	}
	if _, ok := g.FindEdge(a, b); ok {
		return InvalidEdge, ErrParallelEdge
	}
	g.edges = append(g.edges, edge[E]{a: a, b: b, data: data})
	id := EdgeID(len(g.edges) - 1)
	g.nodes[a].incident = append(g.nodes[a].incident, id)
	g.nodes[b].incident = append(g.nodes[b].incident, id)
	return id, nil
}

// Edge returns a pointer to the payload of edge id, valid until the next
// AddEdge. It panics if id is out of range.
func (g *Graph[N, E]) Edge(id EdgeID) *E {
	return &g.edges[id].data
}

// Source returns the first endpoint of edge id, in insertion order.
func (g *Graph[N, E]) Source(id EdgeID) NodeID {
	return g.edges[id].a
}

// Target returns the second endpoint of edge id, in insertion order.
func (g *Graph[N, E]) Target(id EdgeID) NodeID {
	return g.edges[id].b
}

// Endpoints returns both endpoints of edge id, in insertion order.
func (g *Graph[N, E]) Endpoints(id EdgeID) (NodeID, NodeID) {
	e := &g.edges[id]
	return e.a, e.b
}

// FindEdge looks up the edge between a and b, in either endpoint order.
// The second return value reports whether such an edge exists.
func (g *Graph[N, E]) FindEdge(a, b NodeID) (EdgeID, bool) {
	if a < 0 || int(a) >= len(g.nodes) || b < 0 || int(b) >= len(g.nodes) {
		return InvalidEdge, false
	}
	// Scan the shorter incidence list of the two endpoints.
	from, to := a, b
	if len(g.nodes[b].incident) < len(g.nodes[a].incident) {
		from, to = b, a
	}
	for _, id := range g.nodes[from].incident {
		e := &g.edges[id]
		if e.a == to || e.b == to {
			return id, true
		}
	}
	return InvalidEdge, false
}

// Incident returns the IDs of the edges incident to node id. The returned
// slice is owned by the graph and must not be modified.
func (g *Graph[N, E]) Incident(id NodeID) []EdgeID {
	return g.nodes[id].incident
}

// Degree returns the number of edges incident to node id.
func (g *Graph[N, E]) Degree(id NodeID) int {
	return len(g.nodes[id].incident)
}

package disjoint

import (
	"sort"

	"gonum.org/v1/gonum/graph"
)

// UndirectedWeightLister is the input graph for SpanningForest: an undirected
// weighted graph that can list all of its edges. The weighted graphs in
// gonum's graph/simple package satisfy it.
type UndirectedWeightLister interface {
	graph.WeightedUndirected
	WeightedEdges() graph.WeightedEdges
}

// SpanningForest adds a minimum spanning forest of g to dst using Kruskal's
// algorithm and returns the total weight of the added edges. If g is
// connected the result is a minimum spanning tree; otherwise dst receives one
// tree per connected component. Nodes reach dst through its edges, so
// isolated nodes of g do not appear in dst.
//
// Edges are considered in ascending weight order, ties broken by endpoint
// IDs, so the forest is deterministic for a given graph.
func SpanningForest(dst graph.WeightedEdgeAdder, g UndirectedWeightLister) float64 {
	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	// Map sparse node IDs onto dense set elements.
	indexOf := make(map[int64]int, len(nodes))
	set := NewSetWithCapacity(len(nodes))
	for _, n := range nodes {
		indexOf[n.ID()] = set.AddSingleton()
	}

	edges := graph.WeightedEdgesOf(g.WeightedEdges())
	sort.Slice(edges, func(i, j int) bool {
		ei, ej := edges[i], edges[j]
		if ei.Weight() != ej.Weight() {
			return ei.Weight() < ej.Weight()
		}
		if ei.From().ID() != ej.From().ID() {
			return ei.From().ID() < ej.From().ID()
		}
		return ei.To().ID() < ej.To().ID()
	})

	var total float64
	for _, e := range edges {
		if set.join(indexOf[e.From().ID()], indexOf[e.To().ID()]) {
			dst.SetWeightedEdge(e)
			total += e.Weight()
		}
	}
	return total
}

// Components returns the connected components of g as groups of nodes, built
// by joining the endpoints of every edge. Groups are ordered by their
// smallest node ID and nodes within a group ascend by ID.
func Components(g graph.Undirected) [][]graph.Node {
	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	indexOf := make(map[int64]int, len(nodes))
	set := NewSetWithCapacity(len(nodes))
	for _, n := range nodes {
		indexOf[n.ID()] = set.AddSingleton()
	}

	for _, n := range nodes {
		to := g.From(n.ID())
		for to.Next() {
			set.join(indexOf[n.ID()], indexOf[to.Node().ID()])
		}
	}

	groups := set.Sets()
	out := make([][]graph.Node, len(groups))
	for i, indices := range groups {
		component := make([]graph.Node, len(indices))
		for j, e := range indices {
			component[j] = nodes[e]
		}
		out[i] = component
	}
	return out
}

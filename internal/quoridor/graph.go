package quoridor

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Goal nodes. Cell nodes use 10*x+y, so both ids are free.
const (
	goalRow9 int64 = 100 // player 1
	goalRow1 int64 = 101 // player 2
)

func nodeID(p Position) int64 { return int64(10*p.X + p.Y) }

func positionOf(id int64) (Position, bool) {
	if id == goalRow9 || id == goalRow1 {
		return Position{}, false
	}
	return Pos(int(id/10), int(id%10)), true
}

func goalOf(player int) int64 {
	if player == 1 {
		return goalRow9
	}
	return goalRow1
}

// Graph is the movement graph: an edge a->b means a pawn on a may move to b
// in one step. It is rebuilt from scratch after every mutation and never
// edited by callers.
//
// Successor lists keep insertion order so that traversals, and therefore the
// shortest paths handed to the bot, are reproducible.
type Graph struct {
	order []int64
	succ  map[int64][]int64
}

var _ graph.Directed = (*Graph)(nil)

// BuildGraph derives the movement graph from pawn positions and wall anchors.
// Anchors are assumed to be valid for their orientation.
func BuildGraph(p1, p2 Position, horizontal, vertical []Position) *Graph {
	g := &Graph{succ: make(map[int64][]int64, BoardSize*BoardSize+2)}

	for x := 1; x <= BoardSize; x++ {
		for y := 1; y <= BoardSize; y++ {
			p := Pos(x, y)
			g.addNode(nodeID(p))
			if x > 1 {
				g.addEdge(p, Pos(x-1, y))
			}
			if x < BoardSize {
				g.addEdge(p, Pos(x+1, y))
			}
			if y > 1 {
				g.addEdge(p, Pos(x, y-1))
			}
			if y < BoardSize {
				g.addEdge(p, Pos(x, y+1))
			}
		}
	}

	for _, w := range horizontal {
		g.cut(Pos(w.X, w.Y-1), w)
		g.cut(Pos(w.X+1, w.Y-1), Pos(w.X+1, w.Y))
	}
	for _, w := range vertical {
		g.cut(Pos(w.X-1, w.Y), w)
		g.cut(Pos(w.X-1, w.Y+1), Pos(w.X, w.Y+1))
	}

	a, b := nodeID(p1), nodeID(p2)
	if g.HasEdgeFromTo(a, b) || g.HasEdgeFromTo(b, a) {
		g.cut(p1, p2)
		g.addJumps(p1, p2)
		g.addJumps(p2, p1)
	}

	g.addNode(goalRow9)
	g.addNode(goalRow1)
	for x := 1; x <= BoardSize; x++ {
		g.link(nodeID(Pos(x, BoardSize)), goalRow9)
		g.link(nodeID(Pos(x, 1)), goalRow1)
	}
	return g
}

// addJumps gives the pawn on from its moves over the adjacent pawn on over:
// straight across when nothing blocks the far side, otherwise onto every cell
// over can currently reach.
func (g *Graph) addJumps(from, over Position) {
	straight := Pos(2*over.X-from.X, 2*over.Y-from.Y)
	if straight.OnBoard() && g.HasEdgeFromTo(nodeID(over), nodeID(straight)) {
		g.addEdge(from, straight)
		return
	}
	u := nodeID(from)
	for _, v := range slices.Clone(g.succ[nodeID(over)]) {
		if v != u {
			g.link(u, v)
		}
	}
}

func (g *Graph) addNode(id int64) {
	if _, ok := g.succ[id]; ok {
		return
	}
	g.succ[id] = nil
	g.order = append(g.order, id)
}

func (g *Graph) addEdge(a, b Position) { g.link(nodeID(a), nodeID(b)) }

func (g *Graph) link(u, v int64) {
	g.addNode(u)
	g.addNode(v)
	if !slices.Contains(g.succ[u], v) {
		g.succ[u] = append(g.succ[u], v)
	}
}

// cut removes the edges between a and b in both directions.
func (g *Graph) cut(a, b Position) {
	u, v := nodeID(a), nodeID(b)
	g.succ[u] = slices.DeleteFunc(g.succ[u], func(id int64) bool { return id == v })
	g.succ[v] = slices.DeleteFunc(g.succ[v], func(id int64) bool { return id == u })
}

// Successors lists the cells reachable from p in one move.
func (g *Graph) Successors(p Position) []Position {
	var out []Position
	for _, id := range g.succ[nodeID(p)] {
		if q, ok := positionOf(id); ok {
			out = append(out, q)
		}
	}
	return out
}

// CanMove reports whether a pawn on from may step to to.
func (g *Graph) CanMove(from, to Position) bool {
	return g.HasEdgeFromTo(nodeID(from), nodeID(to))
}

// ReachesGoal reports whether a pawn of player standing on from can still
// reach that player's goal row.
func (g *Graph) ReachesGoal(from Position, player int) bool {
	if g.Node(nodeID(from)) == nil {
		return false
	}
	return topo.PathExistsIn(g, simple.Node(nodeID(from)), simple.Node(goalOf(player)))
}

// ShortestPath returns the cells of a shortest route from from to player's
// goal row, starting with from itself. The goal node is not included. The
// result is empty when the goal is unreachable.
func (g *Graph) ShortestPath(from Position, player int) []Position {
	if g.Node(nodeID(from)) == nil {
		return nil
	}
	nodes, _ := path.DijkstraFrom(simple.Node(nodeID(from)), g).To(goalOf(player))
	out := make([]Position, 0, len(nodes))
	for _, n := range nodes {
		if p, ok := positionOf(n.ID()); ok {
			out = append(out, p)
		}
	}
	return out
}

func (g *Graph) Node(id int64) graph.Node {
	if _, ok := g.succ[id]; !ok {
		return nil
	}
	return simple.Node(id)
}

func (g *Graph) Nodes() graph.Nodes { return orderedNodes(g.order) }

func (g *Graph) From(id int64) graph.Nodes { return orderedNodes(g.succ[id]) }

func (g *Graph) To(id int64) graph.Nodes {
	var ids []int64
	for _, u := range g.order {
		if slices.Contains(g.succ[u], id) {
			ids = append(ids, u)
		}
	}
	return orderedNodes(ids)
}

func (g *Graph) HasEdgeBetween(xid, yid int64) bool {
	return g.HasEdgeFromTo(xid, yid) || g.HasEdgeFromTo(yid, xid)
}

func (g *Graph) HasEdgeFromTo(uid, vid int64) bool {
	return slices.Contains(g.succ[uid], vid)
}

func (g *Graph) Edge(uid, vid int64) graph.Edge {
	if !g.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}

func orderedNodes(ids []int64) graph.Nodes {
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		nodes[i] = simple.Node(id)
	}
	return iterator.NewOrderedNodes(nodes)
}

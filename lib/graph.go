package rcs

import "sort"

// EdgeKind describes how a graph node hangs off its parent: along the
// trunk (next chains walking away from head toward older revisions) or
// out onto a branch (branches edges and the branch's own next chain,
// walking toward newer revisions).
type EdgeKind int

const (
	EdgeTrunk EdgeKind = iota
	EdgeBranch
)

// GraphNode is one revision in the traversal tree, annotated with the
// records it owns.
type GraphNode struct {
	Rev   RevNum
	Delta *Delta
	Text  *DeltaText

	Parent   *GraphNode
	Edge     EdgeKind // edge kind from Parent to this node
	Children []*GraphNode
}

// Graph is the head-rooted traversal tree over a Document: trunk edges
// from each revision's next pointer, branch edges from its branches
// list. It is a derived view, rebuilt on demand, never stored back.
type Graph struct {
	Root *GraphNode

	// Nodes indexes every revision reachable from the root.
	Nodes map[string]*GraphNode

	// Orphans lists revisions present in the document but unreachable
	// from head. Not an error by itself: archives may contain detached
	// subgraphs, but orphans cannot be reconstructed.
	Orphans []RevNum
}

// NewGraph builds the traversal tree for a document. A next or branches
// pointer cycle is reported as a SemanticError naming the revision where
// the walk re-entered, rather than looping.
func NewGraph(doc *Document) (*Graph, error) {
	g := &Graph{Nodes: make(map[string]*GraphNode, len(doc.Deltas))}

	if doc.Admin.Head == nil {
		for _, rev := range doc.Order {
			g.Orphans = append(g.Orphans, rev)
		}
		return g, nil
	}

	root, err := g.attach(doc, doc.Admin.Head, nil, EdgeTrunk)
	if err != nil {
		return nil, err
	}
	g.Root = root

	for _, rev := range doc.Order {
		if _, reached := g.Nodes[rev.Key()]; !reached {
			g.Orphans = append(g.Orphans, rev)
		}
	}
	sort.Slice(g.Orphans, func(i, j int) bool { return g.Orphans[i].Less(g.Orphans[j]) })

	return g, nil
}

// attach adds the revision and everything below it: the rest of its next
// chain with the same edge kind, and each of its branches as branch
// roots. The node table doubles as the visited set for cycle detection.
func (g *Graph) attach(doc *Document, rev RevNum, parent *GraphNode, edge EdgeKind) (*GraphNode, error) {
	if _, seen := g.Nodes[rev.Key()]; seen {
		return nil, &SemanticError{Rev: rev, Msg: "revision pointer cycle"}
	}

	delta, ok := doc.Delta(rev)
	if !ok {
		// Assembly already validated pointers; this only trips on a
		// document built by hand.
		return nil, &SemanticError{Rev: rev, Msg: "pointer to missing revision"}
	}
	text, _ := doc.Text(rev)

	node := &GraphNode{Rev: rev, Delta: delta, Text: text, Parent: parent, Edge: edge}
	g.Nodes[rev.Key()] = node
	if parent != nil {
		parent.Children = append(parent.Children, node)
	}

	for _, branch := range delta.Branches {
		if _, err := g.attach(doc, branch, node, EdgeBranch); err != nil {
			return nil, err
		}
	}

	if delta.Next != nil {
		// The trunk chain keeps walking toward older revisions; a branch
		// chain keeps walking out along the branch.
		if _, err := g.attach(doc, delta.Next, node, edge); err != nil {
			return nil, err
		}
	}

	return node, nil
}

// Lookup returns the reachable node for a revision.
func (g *Graph) Lookup(rev RevNum) (*GraphNode, bool) {
	node, ok := g.Nodes[rev.Key()]
	return node, ok
}

// Path returns the ordered chain of nodes from (excluding) the root down
// to the requested revision. The empty path means the request was the
// head itself. Unreachable revisions produce a ReconstructionError.
func (g *Graph) Path(rev RevNum) ([]*GraphNode, error) {
	node, ok := g.Nodes[rev.Key()]
	if !ok {
		return nil, &ReconstructionError{Rev: rev, Msg: "revision unreachable from head"}
	}

	var path []*GraphNode
	for ; node.Parent != nil; node = node.Parent {
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Walk visits every reachable node, root first.
func (g *Graph) Walk(visit func(*GraphNode)) {
	var recurse func(*GraphNode)
	recurse = func(node *GraphNode) {
		visit(node)
		for _, child := range node.Children {
			recurse(child)
		}
	}
	if g.Root != nil {
		recurse(g.Root)
	}
}

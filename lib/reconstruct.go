package rcs

import "strings"

// Reconstruction walks the revision graph from the head's literal text
// and applies each step's stored edit script to the line buffer built so
// far. Trunk steps carry the older revision's script, defined against
// the newer content just built; branch steps carry the branch revision's
// script, defined against the branch point. Either way the stored script
// applies forward against the current buffer, so there is a single apply
// path (Apply in diff.go) and the edge kind only matters for traversal.

// Reconstruct is the secondary entry point: it produces the exact byte
// content of the requested revision. Each call is independent and builds
// only private state, so concurrent calls against one Document are safe.
func Reconstruct(doc *Document, rev RevNum) ([]byte, error) {
	g, err := NewGraph(doc)
	if err != nil {
		return nil, err
	}
	return g.Reconstruct(rev)
}

// Reconstruct produces the content of one revision using an already
// built graph. Callers reconstructing many revisions from one document
// should build the graph once and use this.
func (g *Graph) Reconstruct(rev RevNum) ([]byte, error) {
	if g.Root == nil {
		return nil, &ReconstructionError{Rev: rev, Msg: "archive has no head revision"}
	}

	path, err := g.Path(rev)
	if err != nil {
		return nil, err
	}

	head := g.Root
	if head.Text == nil || !head.Text.IsLiteral() {
		return nil, &ReconstructionError{Rev: head.Rev, Msg: "head revision has no literal text"}
	}

	// The head is the identity case: zero script applications.
	if len(path) == 0 {
		return []byte(head.Text.Literal), nil
	}

	lines := SplitLines(head.Text.Literal)
	for _, step := range path {
		if step.Text.IsLiteral() {
			return nil, &ReconstructionError{Rev: step.Rev, Msg: "non-head revision stores literal text"}
		}
		if lines, err = Apply(lines, step.Text.Script); err != nil {
			if rerr, ok := err.(*ReconstructionError); ok && len(rerr.Rev) == 0 {
				rerr.Rev = step.Rev
			}
			return nil, err
		}
	}

	return []byte(strings.Join(lines, "")), nil
}

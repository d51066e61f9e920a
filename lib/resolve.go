package rcs

import "fmt"

// Resolve maps a user-facing revision request onto a concrete revision
// number. This is a policy layer above the reconstruction engine, which
// only ever sees fully-qualified revision numbers. Accepted requests:
//
//   - "" resolves to the tip of the default branch when the header
//     declares one, else to the head revision;
//   - a revision number (even component count) resolves to itself, after
//     checking it exists;
//   - a branch number (odd component count) resolves to the newest
//     revision on that branch;
//   - anything else is looked up in the symbols table and the result
//     resolved by the same rules.
func Resolve(doc *Document, request string) (RevNum, error) {
	if request == "" {
		if doc.Admin.Branch != nil {
			return branchTip(doc, doc.Admin.Branch)
		}
		if doc.Admin.Head == nil {
			return nil, fmt.Errorf("%w: archive is empty", ErrNoSuchRevision)
		}
		return doc.Admin.Head, nil
	}

	if num, err := ParseRevNum(request); err == nil {
		return resolveNum(doc, num)
	}

	if num, ok := doc.Admin.SymbolRev(request); ok {
		return resolveNum(doc, num)
	}

	return nil, fmt.Errorf("%w: %s", ErrNoSuchRevision, request)
}

func resolveNum(doc *Document, num RevNum) (RevNum, error) {
	if num.IsBranch() {
		return branchTip(doc, num)
	}
	if _, ok := doc.Delta(num); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchRevision, num)
	}
	return num, nil
}

// branchTip returns the newest revision on a branch: the highest-ordered
// revision number directly on it. Works for trunk branches ("1") and
// real branches ("1.2.1") alike.
func branchTip(doc *Document, branch RevNum) (RevNum, error) {
	var tip RevNum
	for _, rev := range doc.Order {
		if rev.OnBranch(branch) && (tip == nil || tip.Less(rev)) {
			tip = rev
		}
	}
	if tip == nil {
		return nil, fmt.Errorf("%w: branch %s has no revisions", ErrNoSuchRevision, branch)
	}
	return tip, nil
}

package rcs

import (
	"fmt"
	"strconv"
	"strings"
)

// RevNum is an RCS revision or branch number: a dot-separated sequence of
// decimal components, e.g. 1.2 or 1.2.1.3. An even component count names a
// revision; an odd count names a branch. Comparison is componentwise, not
// over the printed string.
type RevNum []int

// ParseRevNum parses a dot-separated number. Components must be
// non-negative decimal integers.
func ParseRevNum(s string) (RevNum, error) {
	if s == "" {
		return nil, fmt.Errorf("empty revision number")
	}
	parts := strings.Split(s, ".")
	num := make(RevNum, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid revision number: %s", s)
		}
		num = append(num, n)
	}
	return num, nil
}

func (n RevNum) String() string {
	parts := make([]string, len(n))
	for i, c := range n {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}

// Compare orders componentwise, with a shorter prefix sorting first.
func (n RevNum) Compare(other RevNum) int {
	for i := 0; i < len(n) && i < len(other); i++ {
		if n[i] != other[i] {
			if n[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(n) < len(other):
		return -1
	case len(n) > len(other):
		return 1
	}
	return 0
}

func (n RevNum) Less(other RevNum) bool {
	return n.Compare(other) < 0
}

func (n RevNum) Equal(other RevNum) bool {
	return n.Compare(other) == 0
}

// IsRevision reports whether the number addresses a revision (even
// component count, e.g. 1.2 or 1.2.1.3).
func (n RevNum) IsRevision() bool {
	return len(n) > 0 && len(n)%2 == 0
}

// IsBranch reports whether the number addresses a branch (odd component
// count, e.g. 1 or 1.2.1).
func (n RevNum) IsBranch() bool {
	return len(n)%2 == 1
}

// IsTrunk reports whether the number addresses a trunk revision (two
// components).
func (n RevNum) IsTrunk() bool {
	return len(n) == 2
}

// BranchPoint returns the trunk or branch revision this number diverges
// from: 1.2.1.3 and 1.2.1 both come from 1.2. Returns nil for trunk
// numbers, which have no branching point.
func (n RevNum) BranchPoint() RevNum {
	var cut int
	if n.IsBranch() {
		cut = len(n) - 1
	} else {
		cut = len(n) - 2
	}
	if cut < 2 {
		return nil
	}
	point := make(RevNum, cut)
	copy(point, n[:cut])
	return point
}

// BranchPoints returns every revision this number diverges through, from
// the trunk outward: 1.2.3.4.5.6 yields [1.2, 1.2.3.4].
func (n RevNum) BranchPoints() []RevNum {
	points := make([]RevNum, 0, len(n)/2)
	for i := 2; i < len(n); i += 2 {
		point := make(RevNum, i)
		copy(point, n[:i])
		points = append(points, point)
	}
	return points
}

// OnBranch reports whether the revision lives directly on the given
// branch number: 1.2.1.3 is on branch 1.2.1, and 2.1 is on branch 2.
func (n RevNum) OnBranch(branch RevNum) bool {
	if !n.IsRevision() || !branch.IsBranch() || len(n) != len(branch)+1 {
		return false
	}
	for i, c := range branch {
		if n[i] != c {
			return false
		}
	}
	return true
}

// Key returns the map-key form of the number. RevNum is a slice and
// cannot key a map directly.
func (n RevNum) Key() string {
	return n.String()
}

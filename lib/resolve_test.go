package rcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The demo archive declares a default branch of 1.1.1, so a bare
// request resolves to that branch's tip, not to head.
func TestResolveDefaultBranch(t *testing.T) {
	doc := parseDemo(t)
	rev, err := Resolve(doc, "")
	require.NoError(t, err)
	assert.Equal(t, RevNum{1, 1, 1, 1}, rev)
}

func TestResolveDefaultsToHead(t *testing.T) {
	doc, err := Parse([]byte(laoArchive))
	require.NoError(t, err)

	rev, err := Resolve(doc, "")
	require.NoError(t, err)
	assert.Equal(t, RevNum{2, 1}, rev)
}

func TestResolveRevisionNumber(t *testing.T) {
	doc := parseDemo(t)
	rev, err := Resolve(doc, "1.1")
	require.NoError(t, err)
	assert.Equal(t, RevNum{1, 1}, rev)

	_, err = Resolve(doc, "9.9")
	assert.ErrorIs(t, err, ErrNoSuchRevision)
}

func TestResolveBranchNumber(t *testing.T) {
	doc := parseDemo(t)

	// Trunk branch: newest revision with that major.
	rev, err := Resolve(doc, "1")
	require.NoError(t, err)
	assert.Equal(t, RevNum{1, 1}, rev)

	rev, err = Resolve(doc, "1.1.1")
	require.NoError(t, err)
	assert.Equal(t, RevNum{1, 1, 1, 1}, rev)

	_, err = Resolve(doc, "1.2.1")
	assert.ErrorIs(t, err, ErrNoSuchRevision)
}

func TestResolveSymbol(t *testing.T) {
	doc := parseDemo(t)

	rev, err := Resolve(doc, "v1_1")
	require.NoError(t, err)
	assert.Equal(t, RevNum{1, 1}, rev)

	// A symbol may name a branch; it resolves to the branch tip.
	rev, err = Resolve(doc, "fixes")
	require.NoError(t, err)
	assert.Equal(t, RevNum{1, 1, 1, 1}, rev)

	_, err = Resolve(doc, "nosuchtag")
	assert.ErrorIs(t, err, ErrNoSuchRevision)
}

func TestResolveEmptyArchive(t *testing.T) {
	doc, err := Parse([]byte(emptyArchive))
	require.NoError(t, err)

	_, err = Resolve(doc, "")
	assert.ErrorIs(t, err, ErrNoSuchRevision)
}

package rcs

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reconstructing the head is the identity case: the literal text, zero
// script applications.
func TestReconstructHead(t *testing.T) {
	doc := parseDemo(t)
	content, err := Reconstruct(doc, RevNum{2, 1})
	require.NoError(t, err)
	assert.Equal(t, "A\nB\nC\n", string(content))
}

func TestReconstructTrunk(t *testing.T) {
	doc := parseDemo(t)
	content, err := Reconstruct(doc, RevNum{1, 1})
	require.NoError(t, err)
	assert.Equal(t, "A\nC\n", string(content))
}

func TestReconstructBranch(t *testing.T) {
	doc := parseDemo(t)
	content, err := Reconstruct(doc, RevNum{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, "X\nA\nC\n", string(content))
}

func TestReconstructDeterminism(t *testing.T) {
	doc := parseDemo(t)
	first, err := Reconstruct(doc, RevNum{1, 1, 1, 1})
	require.NoError(t, err)
	second, err := Reconstruct(doc, RevNum{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReconstructLao(t *testing.T) {
	doc, err := Parse([]byte(laoArchive))
	require.NoError(t, err)

	content, err := Reconstruct(doc, RevNum{1, 2})
	require.NoError(t, err)
	assert.Equal(t, laoExpected12, string(content))
}

// Reconstruction never mutates the Document; different targets may be
// rebuilt concurrently from one graph.
func TestReconstructConcurrent(t *testing.T) {
	doc := parseDemo(t)
	g, err := NewGraph(doc)
	require.NoError(t, err)

	targets := []RevNum{{2, 1}, {1, 1}, {1, 1, 1, 1}}
	expected := []string{"A\nB\nC\n", "A\nC\n", "X\nA\nC\n"}

	var wg sync.WaitGroup
	for round := 0; round < 8; round++ {
		for i := range targets {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				content, err := g.Reconstruct(targets[i])
				assert.NoError(t, err)
				assert.Equal(t, expected[i], string(content))
			}(i)
		}
	}
	wg.Wait()
}

func TestReconstructOrphan(t *testing.T) {
	archive := buildArchive("1.1",
		[]string{delta("1.1", ""), delta("3.1", "")},
		[]string{text("1.1", "x\n"), text("3.1", "d1 1\n")})
	doc, err := Parse([]byte(archive))
	require.NoError(t, err)

	_, err = Reconstruct(doc, RevNum{3, 1})
	var recErr *ReconstructionError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, RevNum{3, 1}, recErr.Rev)

	// A failed call does not poison the document.
	content, err := Reconstruct(doc, RevNum{1, 1})
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(content))
}

func TestReconstructScriptOutOfBounds(t *testing.T) {
	// 1.1's script deletes line 5 of a three-line head.
	archive := buildArchive("1.2",
		[]string{delta("1.2", "1.1"), delta("1.1", "")},
		[]string{text("1.2", "A\nB\nC\n"), text("1.1", "d5 1\n")})
	doc, err := Parse([]byte(archive))
	require.NoError(t, err)

	_, err = Reconstruct(doc, RevNum{1, 1})
	var recErr *ReconstructionError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, RevNum{1, 1}, recErr.Rev)

	// Other revisions remain reconstructible.
	content, err := Reconstruct(doc, RevNum{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "A\nB\nC\n", string(content))
}

func TestReconstructEmptyArchive(t *testing.T) {
	doc, err := Parse([]byte(emptyArchive))
	require.NoError(t, err)

	_, err = Reconstruct(doc, RevNum{1, 1})
	var recErr *ReconstructionError
	require.ErrorAs(t, err, &recErr)
}

// A head without a trailing newline must survive reconstruction
// byte-exactly.
func TestReconstructNoFinalNewline(t *testing.T) {
	archive := buildArchive("1.2",
		[]string{delta("1.2", "1.1"), delta("1.1", "")},
		[]string{text("1.2", "A\nB"), text("1.1", "d1 1\n")})
	doc, err := Parse([]byte(archive))
	require.NoError(t, err)

	content, err := Reconstruct(doc, RevNum{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "A\nB", string(content))

	content, err = Reconstruct(doc, RevNum{1, 1})
	require.NoError(t, err)
	assert.Equal(t, "B", string(content))
}

package rcs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	script, err := ParseScript("d1 2\na4 2\naaa\nbbb\n")
	require.NoError(t, err)
	require.Len(t, script, 2)

	assert.Equal(t, DiffCommand{Op: OpDelete, Pos: 1, Count: 2}, script[0])
	assert.Equal(t, DiffCommand{Op: OpAdd, Pos: 4, Count: 2, Lines: []string{"aaa\n", "bbb\n"}}, script[1])
}

func TestParseScriptEmpty(t *testing.T) {
	script, err := ParseScript("")
	require.NoError(t, err)
	assert.NotNil(t, script)
	assert.Empty(t, script)
}

func TestParseScriptFinalLineWithoutNewline(t *testing.T) {
	script, err := ParseScript("a0 1\nno terminator")
	require.NoError(t, err)
	require.Len(t, script, 1)
	assert.Equal(t, []string{"no terminator"}, script[0].Lines)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []string{
		"c2 3\n",      // unknown command
		"a2 \n",       // missing count
		"a2\n",        // missing count entirely
		"d0 1\n",      // delete position zero
		"d1 0\n",      // zero count
		"a2 3\nx\n",   // too few payload lines
		"a2 3",        // no newline after command
		"d1 2junk\n",  // garbage fused to the count
		"d1 2 3\n",    // extra number after the count
		"a1 1 x\nX\n", // garbage after the count
	}
	for _, input := range tests {
		_, err := ParseScript(input)
		assert.Error(t, err, "%q", input)
	}
}

// Trailing spaces after the count are tolerated; anything else on the
// command line is not.
func TestParseScriptTrailingSpaces(t *testing.T) {
	script, err := ParseScript("d1 2 \na4 1  \nX\n")
	require.NoError(t, err)
	require.Len(t, script, 2)
	assert.Equal(t, DiffCommand{Op: OpDelete, Pos: 1, Count: 2}, script[0])
	assert.Equal(t, []string{"X\n"}, script[1].Lines)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a\n", "b\n"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a\n", "b"}, SplitLines("a\nb"))
	assert.Equal(t, []string{"\n"}, SplitLines("\n"))

	// Join of the split is byte-exact.
	for _, text := range []string{"", "x", "x\n", "x\ny\nz", "\n\n"} {
		assert.Equal(t, text, strings.Join(SplitLines(text), ""))
	}
}

func TestApplyDelete(t *testing.T) {
	lines := []string{"A\n", "B\n", "C\n"}
	out, err := Apply(lines, []DiffCommand{{Op: OpDelete, Pos: 2, Count: 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A\n", "C\n"}, out)

	// Input buffer is untouched.
	assert.Equal(t, []string{"A\n", "B\n", "C\n"}, lines)
}

func TestApplyInsertAtTop(t *testing.T) {
	out, err := Apply([]string{"A\n", "C\n"}, []DiffCommand{{Op: OpAdd, Pos: 0, Count: 1, Lines: []string{"X\n"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"X\n", "A\n", "C\n"}, out)
}

// Positions within one script refer to the buffer before any command of
// the script ran; the accumulated offset must account for both deletes
// and inserts.
func TestApplyOffsetTracking(t *testing.T) {
	buffer := []string{"1\n", "2\n", "3\n", "4\n", "5\n", "6\n"}
	script := []DiffCommand{
		{Op: OpDelete, Pos: 1, Count: 2},
		{Op: OpAdd, Pos: 3, Count: 1, Lines: []string{"x\n"}},
		{Op: OpDelete, Pos: 5, Count: 1},
		{Op: OpAdd, Pos: 6, Count: 2, Lines: []string{"y\n", "z\n"}},
	}
	out, err := Apply(buffer, script)
	require.NoError(t, err)
	assert.Equal(t, []string{"3\n", "x\n", "4\n", "6\n", "y\n", "z\n"}, out)
}

func TestApplyBounds(t *testing.T) {
	buffer := []string{"A\n", "B\n", "C\n"}

	tests := []struct {
		name   string
		script []DiffCommand
	}{
		{"delete_past_end", []DiffCommand{{Op: OpDelete, Pos: 3, Count: 2}}},
		{"delete_beyond", []DiffCommand{{Op: OpDelete, Pos: 5, Count: 1}}},
		{"insert_beyond", []DiffCommand{{Op: OpAdd, Pos: 4, Count: 1, Lines: []string{"X\n"}}}},
		{"out_of_order", []DiffCommand{
			{Op: OpDelete, Pos: 3, Count: 1},
			{Op: OpDelete, Pos: 1, Count: 1},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(buffer, tt.script)
			var recErr *ReconstructionError
			require.ErrorAs(t, err, &recErr)
		})
	}
}

package rcs

import (
	"errors"
	"fmt"
)

var (
	ErrNotArchive     = errors.New("not an rcs archive")
	ErrNoSuchRevision = errors.New("no such revision")
)

// LexError reports a byte sequence that matches no lexeme class, or an
// unterminated @-string. Offset is the byte position within the input
// buffer where the problem was detected.
type LexError struct {
	Offset int
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at byte %d: %s", e.Offset, e.Msg)
}

// SyntaxError reports a lexeme stream that does not match the archive
// grammar: what construct the parser expected and what it found instead.
type SyntaxError struct {
	Offset   int
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at byte %d: expected %s, found %s", e.Offset, e.Expected, e.Found)
}

// SemanticError reports a structurally valid archive that is internally
// inconsistent: duplicate revisions, dangling next/branches pointers,
// metadata without text or vice versa, or a pointer cycle.
type SemanticError struct {
	Rev RevNum
	Msg string
}

func (e *SemanticError) Error() string {
	if len(e.Rev) == 0 {
		return fmt.Sprintf("semantic error: %s", e.Msg)
	}
	return fmt.Sprintf("semantic error at revision %s: %s", e.Rev, e.Msg)
}

// ReconstructionError reports a failure to rebuild one revision's content.
// It is scoped to the single requested revision; the Document remains
// usable for other reconstructions.
type ReconstructionError struct {
	Rev RevNum
	Msg string
}

func (e *ReconstructionError) Error() string {
	if len(e.Rev) == 0 {
		return fmt.Sprintf("reconstruction error: %s", e.Msg)
	}
	return fmt.Sprintf("reconstruction error at revision %s: %s", e.Rev, e.Msg)
}

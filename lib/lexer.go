package rcs

import (
	"fmt"
	"strings"
)

// TokenKind classifies a lexeme.
type TokenKind int

const (
	// TokenEOF marks the end of input.
	TokenEOF TokenKind = iota
	// TokenWord is an identifier-like lexeme: authors, states, symbols.
	TokenWord
	// TokenKeyword is one of the reserved archive keywords.
	TokenKeyword
	// TokenNum is digits and dots: revision numbers and timestamps.
	TokenNum
	// TokenString is an @-delimited string, decoded.
	TokenString
	TokenColon
	TokenSemi
)

// Token is a single classified lexeme. Text holds the decoded value for
// strings and the literal spelling for everything else. Offset is the
// byte position of the first byte of the lexeme in the original buffer.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
}

// Describe renders the token for use in error messages.
func (t Token) Describe() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenString:
		text := t.Text
		if len(text) > 24 {
			text = text[:24] + "..."
		}
		return fmt.Sprintf("string %q", text)
	default:
		return fmt.Sprintf("%q", t.Text)
	}
}

// reserved is the fixed keyword vocabulary of the archive grammar. Any
// other identifier in keyword position is a newphrase extension.
var reserved = map[string]bool{
	"head": true, "branch": true, "access": true, "symbols": true,
	"locks": true, "strict": true, "integrity": true, "comment": true,
	"expand": true, "date": true, "author": true, "state": true,
	"branches": true, "next": true, "desc": true, "log": true, "text": true,
}

// special are the archive's punctuation characters. Identifiers may use
// any visible character except these, plus embedded dots: ids and syms
// may start with digits and carry num runs inside them, so word and num
// lexemes share one scan and split on the final shape.
func isSpecial(b byte) bool {
	switch b {
	case '$', ',', '.', ':', ';', '@':
		return true
	}
	return false
}

// Visible graphic characters are (octal) codes 041-176 and 240-377.
func isVisible(b byte) bool {
	return (b >= 0x21 && b <= 0x7e) || b >= 0xa0
}

func isIDChar(b byte) bool {
	return isVisible(b) && !isSpecial(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Lexer turns an archive buffer into a stream of classified lexemes. It
// performs no semantic interpretation.
type Lexer struct {
	r *Reader
}

// NewLexer creates a lexer over the full contents of one archive.
func NewLexer(source []byte) *Lexer {
	return &Lexer{r: NewReader(source)}
}

// Next produces the next lexeme, or a TokenEOF token at end of input.
// Returns a *LexError when a byte sequence matches no lexeme class or an
// @-string is unterminated.
func (lx *Lexer) Next() (Token, error) {
	lx.r.SkipSpace()
	offset := lx.r.Offset()

	if lx.r.AtEOF() {
		return Token{Kind: TokenEOF, Offset: offset}, nil
	}

	switch b := lx.r.Byte(0); {
	case b == ';':
		lx.r.Skip(1)
		return Token{Kind: TokenSemi, Text: ";", Offset: offset}, nil
	case b == ':':
		lx.r.Skip(1)
		return Token{Kind: TokenColon, Text: ":", Offset: offset}, nil
	case b == '@':
		return lx.scanString(offset)
	case isIDChar(b) || b == '.':
		return lx.scanWordOrNum(offset), nil
	default:
		return Token{}, &LexError{Offset: offset, Msg: fmt.Sprintf("unexpected byte 0x%02x", b)}
	}
}

// scanWordOrNum consumes a maximal run of identifier characters and
// dots. A run of digits and dots alone is a num (revision numbers,
// timestamps); anything else is an identifier, which may legally start
// with digits ("2release") or contain dots ("j.doe"). Identifiers in the
// reserved vocabulary classify as keywords.
func (lx *Lexer) scanWordOrNum(offset int) Token {
	i, numeric := 0, true
	for i < lx.r.Len() {
		b := lx.r.Byte(i)
		if !isIDChar(b) && b != '.' {
			break
		}
		if !isDigit(b) && b != '.' {
			numeric = false
		}
		i++
	}
	text := string(lx.r.Take(i))
	switch {
	case numeric:
		return Token{Kind: TokenNum, Text: text, Offset: offset}
	case reserved[text]:
		return Token{Kind: TokenKeyword, Text: text, Offset: offset}
	}
	return Token{Kind: TokenWord, Text: text, Offset: offset}
}

// scanString consumes an @-delimited string. A literal @@ inside the
// string decodes to a single @; the content is otherwise byte-transparent,
// including embedded control characters and newlines.
func (lx *Lexer) scanString(offset int) (Token, error) {
	lx.r.Skip(1) // opening @

	var sb strings.Builder
	for {
		// Find the next delimiter in the remaining span.
		i := 0
		for i < lx.r.Len() && lx.r.Byte(i) != '@' {
			i++
		}
		if i == lx.r.Len() {
			return Token{}, &LexError{Offset: offset, Msg: "unterminated @ string"}
		}
		sb.Write(lx.r.Take(i))
		lx.r.Skip(1)
		if lx.r.Len() > 0 && lx.r.Byte(0) == '@' {
			// Escaped delimiter: keep one @ and continue.
			sb.WriteByte('@')
			lx.r.Skip(1)
			continue
		}
		return Token{Kind: TokenString, Text: sb.String(), Offset: offset}, nil
	}
}

package rcs

import "fmt"

// Parser consumes the lexeme stream and builds the structured document:
// the administrative header, the delta-metadata records, the description,
// and the log+text records. It performs syntactic validation only; the
// assembler in document.go cross-checks the result.
type Parser struct {
	lx  *Lexer
	tok Token // single-token lookahead
}

// Parse is the primary entry point: it parses a complete archive buffer
// and assembles the result into a Document. The whole buffer must be
// consumed; trailing garbage is a syntax error. Errors are *LexError,
// *SyntaxError or *SemanticError.
func Parse(source []byte) (*Document, error) {
	p := &Parser{lx: NewLexer(source)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	admin, err := p.parseAdmin()
	if err != nil {
		return nil, err
	}

	deltas, err := p.parseDeltas()
	if err != nil {
		return nil, err
	}

	desc, err := p.parseDesc()
	if err != nil {
		return nil, err
	}

	texts, err := p.parseDeltaTexts(admin.Head)
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != TokenEOF {
		return nil, p.fail("end of input")
	}

	return assemble(admin, desc, deltas, texts)
}

func (p *Parser) advance() error {
	tok, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// fail produces a SyntaxError describing what was expected at the
// current token.
func (p *Parser) fail(expected string) error {
	return &SyntaxError{Offset: p.tok.Offset, Expected: expected, Found: p.tok.Describe()}
}

// atKeyword reports whether the lookahead is the given reserved word.
func (p *Parser) atKeyword(name string) bool {
	return p.tok.Kind == TokenKeyword && p.tok.Text == name
}

// keyword consumes a required reserved word.
func (p *Parser) keyword(name string) error {
	if !p.atKeyword(name) {
		return p.fail(fmt.Sprintf("keyword %q", name))
	}
	return p.advance()
}

// semi consumes the terminator of a field.
func (p *Parser) semi() error {
	if p.tok.Kind != TokenSemi {
		return p.fail(`";"`)
	}
	return p.advance()
}

// num consumes a required revision number.
func (p *Parser) num() (RevNum, error) {
	if p.tok.Kind != TokenNum {
		return nil, p.fail("revision number")
	}
	rev, err := ParseRevNum(p.tok.Text)
	if err != nil {
		return nil, p.fail("revision number")
	}
	return rev, p.advance()
}

// optNum consumes a revision number if one is present. Fields like next
// and the head of an empty archive allow the number to be omitted.
func (p *Parser) optNum() (RevNum, error) {
	if p.tok.Kind != TokenNum {
		return nil, nil
	}
	return p.num()
}

// word consumes an identifier. Reserved words are valid identifiers in
// value position (an author may be named "state").
func (p *Parser) word() (string, error) {
	if p.tok.Kind != TokenWord && p.tok.Kind != TokenKeyword {
		return "", p.fail("identifier")
	}
	text := p.tok.Text
	return text, p.advance()
}

// str consumes a required @-delimited string.
func (p *Parser) str() (string, error) {
	if p.tok.Kind != TokenString {
		return "", p.fail("@-string")
	}
	text := p.tok.Text
	return text, p.advance()
}

// parseAdmin parses the administrative header. Field order is fixed:
//
//	head {num}; {branch {num};} access {id}*; symbols {sym:num}*;
//	locks {id:num}*; {strict;} {integrity {string};} {comment {string};}
//	{expand {string};} {newphrase}*
func (p *Parser) parseAdmin() (*Admin, error) {
	admin := &Admin{}

	if err := p.keyword("head"); err != nil {
		return nil, err
	}
	var err error
	if admin.Head, err = p.optNum(); err != nil {
		return nil, err
	}
	if err = p.semi(); err != nil {
		return nil, err
	}

	if p.atKeyword("branch") {
		if err = p.advance(); err != nil {
			return nil, err
		}
		if admin.Branch, err = p.optNum(); err != nil {
			return nil, err
		}
		if err = p.semi(); err != nil {
			return nil, err
		}
	}

	if err = p.keyword("access"); err != nil {
		return nil, err
	}
	for p.tok.Kind == TokenWord {
		id, err := p.word()
		if err != nil {
			return nil, err
		}
		admin.Access = append(admin.Access, id)
	}
	if err = p.semi(); err != nil {
		return nil, err
	}

	if err = p.keyword("symbols"); err != nil {
		return nil, err
	}
	for p.tok.Kind == TokenWord {
		name, rev, err := p.parsePair()
		if err != nil {
			return nil, err
		}
		admin.Symbols = append(admin.Symbols, Symbol{Name: name, Rev: rev})
	}
	if err = p.semi(); err != nil {
		return nil, err
	}

	if err = p.keyword("locks"); err != nil {
		return nil, err
	}
	for p.tok.Kind == TokenWord {
		owner, rev, err := p.parsePair()
		if err != nil {
			return nil, err
		}
		admin.Locks = append(admin.Locks, Lock{Owner: owner, Rev: rev})
	}
	if err = p.semi(); err != nil {
		return nil, err
	}

	if p.atKeyword("strict") {
		if err = p.advance(); err != nil {
			return nil, err
		}
		if err = p.semi(); err != nil {
			return nil, err
		}
		admin.Strict = true
	}

	if p.atKeyword("integrity") {
		if err = p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind == TokenString {
			if admin.Integrity, err = p.str(); err != nil {
				return nil, err
			}
		}
		if err = p.semi(); err != nil {
			return nil, err
		}
	}

	if p.atKeyword("comment") {
		if err = p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind == TokenString {
			if admin.Comment, err = p.str(); err != nil {
				return nil, err
			}
		}
		if err = p.semi(); err != nil {
			return nil, err
		}
	}

	if p.atKeyword("expand") {
		if err = p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind == TokenString {
			at := p.tok.Offset
			text, err := p.str()
			if err != nil {
				return nil, err
			}
			if admin.Expand, err = ParseExpandMode(text); err != nil {
				return nil, &SyntaxError{Offset: at, Expected: "expand mode (kv, kvl, k, v, o, b)", Found: fmt.Sprintf("%q", text)}
			}
		}
		if err = p.semi(); err != nil {
			return nil, err
		}
	}

	if admin.Phrases, err = p.parsePhrases(); err != nil {
		return nil, err
	}

	return admin, nil
}

// parsePair parses one "name : num" entry of the symbols or locks table.
func (p *Parser) parsePair() (string, RevNum, error) {
	name, err := p.word()
	if err != nil {
		return "", nil, err
	}
	if p.tok.Kind != TokenColon {
		return "", nil, p.fail(`":"`)
	}
	if err = p.advance(); err != nil {
		return "", nil, err
	}
	rev, err := p.num()
	if err != nil {
		return "", nil, err
	}
	return name, rev, nil
}

// parsePhrases collects newphrase extension fields: any non-reserved
// identifier in keyword position, followed by words, terminated by a
// semicolon. Unknown fields are accepted generically rather than
// rejected, for forward compatibility with format extensions.
func (p *Parser) parsePhrases() (Phrases, error) {
	var phrases Phrases
	for p.tok.Kind == TokenWord {
		key := p.tok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		var words []string
		for p.tok.Kind != TokenSemi {
			switch p.tok.Kind {
			case TokenWord, TokenKeyword, TokenNum, TokenString, TokenColon:
				words = append(words, p.tok.Text)
			default:
				return nil, p.fail("phrase word or \";\"")
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if err := p.advance(); err != nil { // consume ";"
			return nil, err
		}
		phrases = append(phrases, Phrase{Key: key, Words: words})
	}
	return phrases, nil
}

// parseDeltas parses zero or more delta-metadata blocks, each led by a
// revision number. The section ends at the desc keyword.
func (p *Parser) parseDeltas() ([]*Delta, error) {
	var deltas []*Delta
	for p.tok.Kind == TokenNum {
		delta, err := p.parseDelta()
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, delta)
	}
	return deltas, nil
}

// parseDelta parses one delta-metadata block:
//
//	num date num; author id; state {id}; branches {num}*;
//	next {num}; {newphrase}*
func (p *Parser) parseDelta() (*Delta, error) {
	delta := &Delta{}

	var err error
	if delta.Rev, err = p.num(); err != nil {
		return nil, err
	}

	if err = p.keyword("date"); err != nil {
		return nil, err
	}
	if p.tok.Kind != TokenNum {
		return nil, p.fail("timestamp")
	}
	delta.Date = p.tok.Text
	if err = p.advance(); err != nil {
		return nil, err
	}
	if err = p.semi(); err != nil {
		return nil, err
	}

	if err = p.keyword("author"); err != nil {
		return nil, err
	}
	if delta.Author, err = p.word(); err != nil {
		return nil, err
	}
	if err = p.semi(); err != nil {
		return nil, err
	}

	if err = p.keyword("state"); err != nil {
		return nil, err
	}
	if p.tok.Kind == TokenWord || p.tok.Kind == TokenKeyword {
		if delta.State, err = p.word(); err != nil {
			return nil, err
		}
	}
	if err = p.semi(); err != nil {
		return nil, err
	}

	if err = p.keyword("branches"); err != nil {
		return nil, err
	}
	for p.tok.Kind == TokenNum {
		branch, err := p.num()
		if err != nil {
			return nil, err
		}
		delta.Branches = append(delta.Branches, branch)
	}
	if err = p.semi(); err != nil {
		return nil, err
	}

	if err = p.keyword("next"); err != nil {
		return nil, err
	}
	if delta.Next, err = p.optNum(); err != nil {
		return nil, err
	}
	if err = p.semi(); err != nil {
		return nil, err
	}

	if delta.Phrases, err = p.parsePhrases(); err != nil {
		return nil, err
	}

	return delta, nil
}

// parseDesc parses the required description string.
func (p *Parser) parseDesc() (string, error) {
	if err := p.keyword("desc"); err != nil {
		return "", err
	}
	return p.str()
}

// parseDeltaTexts parses zero or more log+text blocks. The head
// revision's text payload is literal content; every other payload is an
// edit script and is parsed as one here, so a malformed script surfaces
// as a SyntaxError at parse time rather than at reconstruction.
func (p *Parser) parseDeltaTexts(head RevNum) ([]*DeltaText, error) {
	var texts []*DeltaText
	for p.tok.Kind == TokenNum {
		text, err := p.parseDeltaText(head)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// parseDeltaText parses one log+text block:
//
//	num log string {newphrase}* text string
func (p *Parser) parseDeltaText(head RevNum) (*DeltaText, error) {
	dt := &DeltaText{}

	var err error
	if dt.Rev, err = p.num(); err != nil {
		return nil, err
	}

	if err = p.keyword("log"); err != nil {
		return nil, err
	}
	if dt.Log, err = p.str(); err != nil {
		return nil, err
	}

	if dt.Phrases, err = p.parsePhrases(); err != nil {
		return nil, err
	}

	if err = p.keyword("text"); err != nil {
		return nil, err
	}
	at := p.tok.Offset
	if dt.Src, err = p.str(); err != nil {
		return nil, err
	}

	// An archive with no head cannot anchor scripts; keep payloads
	// literal and let reconstruction reject the orphans.
	if head == nil || dt.Rev.Equal(head) {
		dt.Literal = dt.Src
	} else {
		if dt.Script, err = ParseScript(dt.Src); err != nil {
			return nil, &SyntaxError{Offset: at, Expected: "edit script", Found: err.Error()}
		}
	}

	return dt, nil
}

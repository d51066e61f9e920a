package rcs

import (
	"fmt"
	"strings"
)

// DiffOp is an edit-script command code.
type DiffOp byte

const (
	OpAdd    DiffOp = 'a' // insert lines after a position
	OpDelete DiffOp = 'd' // delete lines from a position
)

// DiffCommand is one line-oriented edit command. Pos and Count are the
// two numbers of an "a<pos> <count>" or "d<pos> <count>" line; positions
// are 1-based line numbers in the reference buffer, with position 0
// meaning "before the first line" for inserts. Lines carries the literal
// payload of an insert, each line keeping its terminator.
type DiffCommand struct {
	Op    DiffOp
	Pos   int
	Count int
	Lines []string
}

// ParseScript parses a deltatext payload as an edit script: a sequence
// of add/delete commands, each followed (for adds) by its literal lines.
// Positions within one script refer to the reference buffer before any
// command of the script is applied, so commands appear in ascending
// position order.
func ParseScript(src string) ([]DiffCommand, error) {
	script := make([]DiffCommand, 0, 8)
	rest := src
	for len(rest) > 0 {
		op := rest[0]
		if op != 'a' && op != 'd' {
			return nil, fmt.Errorf("invalid edit command %q", op)
		}
		line, tail, ok := cutLine(rest[1:])
		if !ok {
			return nil, fmt.Errorf("missing newline after edit command")
		}
		// Only spaces may follow the count; %1s catches any garbage.
		var pos, count int
		var extra string
		if n, _ := fmt.Sscanf(line, "%d %d%1s", &pos, &count, &extra); n != 2 {
			return nil, fmt.Errorf("malformed edit command %q", string(op)+line)
		}
		if pos < 0 || count < 1 || (op == 'd' && pos < 1) {
			return nil, fmt.Errorf("malformed edit command %q", string(op)+line)
		}
		cmd := DiffCommand{Op: DiffOp(op), Pos: pos, Count: count}
		if cmd.Op == OpAdd {
			cmd.Lines = make([]string, 0, count)
			for i := 0; i < count; i++ {
				nl := strings.IndexByte(tail, '\n')
				if nl == -1 {
					if tail == "" {
						return nil, fmt.Errorf("edit command a%d %d: only %d line(s) follow", pos, count, i)
					}
					// Final line of the archive text without a terminator.
					cmd.Lines = append(cmd.Lines, tail)
					tail = ""
					continue
				}
				cmd.Lines = append(cmd.Lines, tail[:nl+1])
				tail = tail[nl+1:]
			}
		}
		script = append(script, cmd)
		rest = tail
	}
	return script, nil
}

// cutLine splits off the first line, excluding its terminator.
func cutLine(s string) (line, rest string, ok bool) {
	nl := strings.IndexByte(s, '\n')
	if nl == -1 {
		return s, "", false
	}
	return s[:nl], s[nl+1:], true
}

// SplitLines splits text into lines that keep their terminators, so a
// final line without a trailing newline survives joins byte-exactly.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for len(text) > 0 {
		nl := strings.IndexByte(text, '\n')
		if nl == -1 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:nl+1])
		text = text[nl+1:]
	}
	return lines
}

// Apply runs an edit script over a line buffer and returns the edited
// buffer. The input is never modified; concurrent callers may share it.
// Command positions refer to the buffer as it was before the script ran,
// so application tracks an accumulated offset rather than renumbering.
// Out-of-bounds or out-of-order positions produce a ReconstructionError.
func Apply(lines []string, script []DiffCommand) ([]string, error) {
	out := make([]string, len(lines), len(lines)+grows(script))
	copy(out, lines)

	offset, lastPos := 0, 0
	for _, cmd := range script {
		if cmd.Pos < lastPos {
			return nil, &ReconstructionError{Msg: fmt.Sprintf("edit command %c%d %d out of order", cmd.Op, cmd.Pos, cmd.Count)}
		}
		lastPos = cmd.Pos
		switch cmd.Op {
		case OpDelete:
			start := cmd.Pos - 1 + offset
			if cmd.Pos < 1 || start < 0 || start+cmd.Count > len(out) {
				return nil, &ReconstructionError{Msg: fmt.Sprintf("delete %d..%d outside buffer of %d line(s)", cmd.Pos, cmd.Pos+cmd.Count-1, len(out)-offset)}
			}
			out = append(out[:start], out[start+cmd.Count:]...)
			offset -= cmd.Count
		case OpAdd:
			at := cmd.Pos + offset
			if at < 0 || at > len(out) {
				return nil, &ReconstructionError{Msg: fmt.Sprintf("insert after line %d outside buffer of %d line(s)", cmd.Pos, len(out)-offset)}
			}
			spliced := make([]string, 0, len(out)+len(cmd.Lines))
			spliced = append(spliced, out[:at]...)
			spliced = append(spliced, cmd.Lines...)
			spliced = append(spliced, out[at:]...)
			out = spliced
			offset += len(cmd.Lines)
		default:
			return nil, &ReconstructionError{Msg: fmt.Sprintf("invalid edit command %q", cmd.Op)}
		}
	}
	return out, nil
}

func grows(script []DiffCommand) int {
	total := 0
	for _, cmd := range script {
		if cmd.Op == OpAdd {
			total += len(cmd.Lines)
		}
	}
	return total
}

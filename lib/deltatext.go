package rcs

// DeltaText is the per-revision log+text record. Exactly one revision
// (the head) stores its content as literal text; every other revision
// stores an edit script against a neighbor's content.
type DeltaText struct {
	Rev     RevNum
	Log     string
	Phrases Phrases

	// Src is the raw decoded text payload, kept for round-trip fidelity.
	Src string

	// Literal holds the payload of the head revision; Script holds the
	// parsed edit commands of every other revision. Only one is set.
	Literal string
	Script  []DiffCommand
}

// IsLiteral reports whether this record stores full text rather than an
// edit script.
func (dt *DeltaText) IsLiteral() bool {
	return dt.Script == nil
}

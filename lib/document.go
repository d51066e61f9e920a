package rcs

// Document is one fully parsed, internally consistent archive: the
// administrative header plus the metadata and log+text records indexed by
// revision number. Documents are immutable once assembled; the graph and
// reconstructed texts are derived views, recomputable at any time.
type Document struct {
	Admin *Admin
	Desc  string

	// Deltas and Texts are keyed by RevNum.Key(). Order preserves the
	// file order of the metadata section.
	Deltas map[string]*Delta
	Texts  map[string]*DeltaText
	Order  []RevNum
}

// assemble cross-links the parsed metadata and log+text records and
// verifies the document's internal consistency: unique keys, one text
// per delta and vice versa, and no dangling head/next/branches pointers.
func assemble(admin *Admin, desc string, deltas []*Delta, texts []*DeltaText) (*Document, error) {
	doc := &Document{
		Admin:  admin,
		Desc:   desc,
		Deltas: make(map[string]*Delta, len(deltas)),
		Texts:  make(map[string]*DeltaText, len(texts)),
		Order:  make([]RevNum, 0, len(deltas)),
	}

	for _, delta := range deltas {
		key := delta.Rev.Key()
		if _, dup := doc.Deltas[key]; dup {
			return nil, &SemanticError{Rev: delta.Rev, Msg: "duplicate revision metadata"}
		}
		doc.Deltas[key] = delta
		doc.Order = append(doc.Order, delta.Rev)
	}

	for _, text := range texts {
		key := text.Rev.Key()
		if _, dup := doc.Texts[key]; dup {
			return nil, &SemanticError{Rev: text.Rev, Msg: "duplicate revision text"}
		}
		if _, present := doc.Deltas[key]; !present {
			return nil, &SemanticError{Rev: text.Rev, Msg: "text for undeclared revision"}
		}
		doc.Texts[key] = text
	}

	for _, delta := range deltas {
		if _, present := doc.Texts[delta.Rev.Key()]; !present {
			return nil, &SemanticError{Rev: delta.Rev, Msg: "revision has no text"}
		}
		if delta.Next != nil {
			if _, present := doc.Deltas[delta.Next.Key()]; !present {
				return nil, &SemanticError{Rev: delta.Rev, Msg: "next points to missing revision " + delta.Next.String()}
			}
		}
		for _, branch := range delta.Branches {
			if _, present := doc.Deltas[branch.Key()]; !present {
				return nil, &SemanticError{Rev: delta.Rev, Msg: "branches points to missing revision " + branch.String()}
			}
		}
	}

	if admin.Head != nil && len(doc.Deltas) > 0 {
		if _, present := doc.Deltas[admin.Head.Key()]; !present {
			return nil, &SemanticError{Rev: admin.Head, Msg: "declared head is missing"}
		}
	}

	return doc, nil
}

// Delta returns the metadata record for a revision.
func (d *Document) Delta(rev RevNum) (*Delta, bool) {
	delta, ok := d.Deltas[rev.Key()]
	return delta, ok
}

// Text returns the log+text record for a revision.
func (d *Document) Text(rev RevNum) (*DeltaText, bool) {
	text, ok := d.Texts[rev.Key()]
	return text, ok
}

// Head returns the metadata record of the head revision, or nil for an
// empty archive.
func (d *Document) Head() *Delta {
	if d.Admin.Head == nil {
		return nil
	}
	return d.Deltas[d.Admin.Head.Key()]
}

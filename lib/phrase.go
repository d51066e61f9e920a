package rcs

// Phrase is one "newphrase" extension field: an unrecognized but
// well-formed keyword followed by its words. The archive grammar allows
// vendors to attach these to any block; they are preserved verbatim, in
// input order, for round-trip fidelity.
type Phrase struct {
	Key   string
	Words []string
}

// Phrases is the ordered collection of extension fields on one block.
type Phrases []Phrase

// Get returns the words of the first phrase with the given key.
func (p Phrases) Get(key string) (words []string, ok bool) {
	idx := IndexFunc(p, func(ph Phrase) bool { return ph.Key == key })
	if idx == -1 {
		return nil, false
	}
	return p[idx].Words, true
}

// Has reports whether a phrase with the given key is present.
func (p Phrases) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

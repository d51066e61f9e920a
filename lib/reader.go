package rcs

// Reader is a wrapper and series of helpers around a byte slice that
// represents the unconsumed portion of an archive buffer.
type Reader struct {
	buffer []byte
	length int
}

// NewReader allocates a Reader object that describes the given byte slice.
func NewReader(source []byte) *Reader {
	return &Reader{buffer: source, length: len(source)}
}

// Close releases the reference to the buffer.
func (r *Reader) Close() {
	r.buffer = nil
	r.length = -1
}

// Offset returns the offset of the first byte in the remaining buffer
// relative to the beginning of the original slice.
func (r *Reader) Offset() int {
	return r.length - len(r.buffer)
}

// AtEOF returns true if there is no data left in the reader.
func (r *Reader) AtEOF() bool {
	return len(r.buffer) == 0
}

// Len returns the remaining byte count of the reader.
func (r *Reader) Len() int {
	return len(r.buffer)
}

// Byte returns the byte at position i of the remaining buffer without
// consuming anything.
func (r *Reader) Byte(i int) byte {
	return r.buffer[i]
}

// Take consumes n bytes from the front of the reader and returns them.
// The caller is responsible for bounds checking via Len.
func (r *Reader) Take(n int) []byte {
	data := r.buffer[:n]
	r.buffer = r.buffer[n:]
	return data
}

// Skip discards n bytes from the front of the reader.
func (r *Reader) Skip(n int) {
	r.buffer = r.buffer[n:]
}

// SkipSpace discards leading whitespace. Whitespace is insignificant
// between lexemes everywhere outside @-strings.
func (r *Reader) SkipSpace() {
	i := 0
	for i < len(r.buffer) && isSpace(r.buffer[i]) {
		i++
	}
	r.buffer = r.buffer[i:]
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

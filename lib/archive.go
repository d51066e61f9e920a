package rcs

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Archive encapsulates one comma-v file on disk: the mapping of its raw
// bytes and the Document parsed from them. The core parser itself never
// touches the file system; this is the file-reading collaborator that
// hands it a complete in-memory buffer.
type Archive struct {
	Path string
	Doc  *Document

	data mmap.MMap
}

// checkValidSource tests that a mapped file looks like an actual comma-v
// archive before handing it to the parser: the first lexeme of every
// valid archive is the head keyword.
func checkValidSource(source []byte) error {
	rest := bytes.TrimLeft(source, " \t\r\n\v\f")
	if !bytes.HasPrefix(rest, []byte("head")) {
		return fmt.Errorf("%w: does not start with a head field", ErrNotArchive)
	}
	return nil
}

// OpenArchive maps a comma-v file into memory and parses it. All parsed
// strings are copies, so the Document outlives Close; keeping the file
// mapped merely avoids holding the whole buffer on the heap while the
// caller still wants raw-byte access.
func OpenArchive(path string) (archive *Archive, err error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}

	if err := checkValidSource(data); err != nil {
		data.Unmap()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		data.Unmap()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Archive{Path: path, Doc: doc, data: data}, nil
}

// Bytes returns the raw mapped archive contents.
func (a *Archive) Bytes() []byte {
	return a.data
}

// Close releases the mapping. The Document remains valid.
func (a *Archive) Close() error {
	if a.data == nil {
		return nil
	}
	err := a.data.Unmap()
	a.data = nil
	return err
}

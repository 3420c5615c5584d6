package core

// streaming.go prepares a byte stream for the delimited-text parser.
//
//   - newBOMSkippingReader drops a leading UTF-8 BOM (0xEF 0xBB 0xBF) written
//     by Windows tools, so the first header name is not polluted.
//   - countingReader tracks bytes consumed for load logging.
//
// Invalid UTF-8 is repaired per cell in sanitizeCell.

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// newBOMSkippingReader returns a buffered reader positioned after any BOM.
func newBOMSkippingReader(r io.Reader) (*bufio.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(utf8BOM))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if bytes.Equal(head, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, err
		}
	}
	return br, nil
}

// countingReader wraps an io.Reader to track bytes read.
type countingReader struct {
	reader    io.Reader
	BytesRead int64
}

// Read implements io.Reader.
func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// sanitizeCell replaces invalid UTF-8 sequences with '?'.
// The common all-valid case returns the input unchanged.
func sanitizeCell(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "?")
}

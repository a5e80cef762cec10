package fileiter

import (
	"bufio"
	"io"
)

// DefaultMaxLineSize bounds a single line; longer lines fail the scan.
const DefaultMaxLineSize = 1024 * 1024

type Iterator interface {
	// Next returns the next line without its line ending. At end of
	// input it returns a nil line and the scanner error, if any.
	Next() ([]byte, error)
}

type scannerIterator struct {
	scanner *bufio.Scanner
}

func NewWithScanner(r io.Reader) Iterator {
	return NewWithScannerSize(r, DefaultMaxLineSize)
}

func NewWithScannerSize(r io.Reader, maxLineSize int) Iterator {
	if maxLineSize <= 0 {
		maxLineSize = DefaultMaxLineSize
	}
	// Start small and let the scanner grow up to maxLineSize
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLineSize)), maxLineSize)
	return &scannerIterator{scanner: scanner}
}

func (s *scannerIterator) Next() ([]byte, error) {
	if s.scanner.Scan() {
		return s.scanner.Bytes(), nil
	} else {
		return nil, s.scanner.Err()
	}
}

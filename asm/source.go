package asm

import (
	"bufio"
	"io"
	"math"
)

// LineReader provides source lines one at a time. ReadLine returns io.EOF
// once the source is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

type scannerLines struct {
	scanner *bufio.Scanner
}

// ScanLines reads newline-separated lines from r with no limit on line
// length. A trailing carriage return is dropped from every line, so CRLF
// sources assemble the same as LF ones.
func ScanLines(r io.Reader) LineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)

	return &scannerLines{scanner: scanner}
}

func (s *scannerLines) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}

	if err := s.scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

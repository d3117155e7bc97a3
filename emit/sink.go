package emit

import (
	"bufio"
	"io"
)

// LineSink buffers lines on top of an io.Writer. Every line ends with a
// newline. Flush must be called once writing is done.
type LineSink struct {
	w *bufio.Writer
}

// WriteLines returns a LineSink that writes to w.
func WriteLines(w io.Writer) *LineSink {
	return &LineSink{w: bufio.NewWriter(w)}
}

// WriteLine writes one line.
func (s *LineSink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}

	return s.w.WriteByte('\n')
}

// Flush writes out buffered lines.
func (s *LineSink) Flush() error {
	return s.w.Flush()
}

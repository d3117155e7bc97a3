// Package emit writes assembled programs as memory images.
package emit

import (
	"github.com/sarchlab/asm8/asm"
)

// LineWriter receives the output one line at a time.
type LineWriter interface {
	WriteLine(line string) error
}

// Summary describes what an Emit call wrote.
type Summary struct {
	// Words is the number of words that came from the source.
	Words int
	// Padding is the number of zero words added after them.
	Padding int
}

// Total returns the number of lines written.
func (s Summary) Total() int {
	return s.Words + s.Padding
}

// Emitter serializes programs, one word per line.
type Emitter struct {
	wordSize    int
	memoryWords int
}

// Emit writes every word of the program and then zero words until the
// memory size is reached. Programs longer than the memory are written in
// full.
func (e *Emitter) Emit(dst LineWriter, p *asm.Program) (Summary, error) {
	s := Summary{Words: p.Len()}

	for _, w := range p.Words() {
		if err := dst.WriteLine(string(w)); err != nil {
			return s, &asm.IOError{Op: "write output", Err: err}
		}
	}

	zero := string(asm.ZeroWord(e.wordSize))
	for i := p.Len(); i < e.memoryWords; i++ {
		if err := dst.WriteLine(zero); err != nil {
			return s, &asm.IOError{Op: "write output", Err: err}
		}
		s.Padding++
	}

	return s, nil
}

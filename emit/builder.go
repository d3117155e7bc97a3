package emit

import "github.com/sarchlab/asm8/isa"

// MinMemoryWords is the size of the processor's instruction memory. Shorter
// programs are padded with zero words up to it.
const MinMemoryWords = 128

// Builder can create emitters.
type Builder struct {
	wordSize    int
	memoryWords int
}

// NewBuilder returns a builder for the default 8-bit, 128-word memory.
func NewBuilder() Builder {
	return Builder{
		wordSize:    isa.DefaultWordSize,
		memoryWords: MinMemoryWords,
	}
}

// WithWordSize sets the width of the padding words.
func (b Builder) WithWordSize(bits int) Builder {
	if bits <= 0 {
		panic("word size must be positive")
	}
	b.wordSize = bits
	return b
}

// WithMemoryWords sets the number of lines the output is padded to.
func (b Builder) WithMemoryWords(n int) Builder {
	if n < 0 {
		panic("memory size must not be negative")
	}
	b.memoryWords = n
	return b
}

// Build creates an emitter.
func (b Builder) Build() *Emitter {
	return &Emitter{
		wordSize:    b.wordSize,
		memoryWords: b.memoryWords,
	}
}

package asm

// Role tells what part of an instruction a word encodes.
type Role int

const (
	RoleOpcode Role = iota
	RoleOperand
)

func (r Role) String() string {
	if r == RoleOpcode {
		return "opcode"
	}
	return "operand"
}

// A Record is one emitted word together with where it came from.
type Record struct {
	Word     Word
	Line     int
	Mnemonic string
	Role     Role
}

// Program is the ordered list of words produced by one assembly run. Words
// are only ever appended.
type Program struct {
	records []Record
}

func (p *Program) append(e Record) {
	p.records = append(p.records, e)
}

// Len returns the number of words.
func (p *Program) Len() int {
	return len(p.records)
}

// Records returns the emitted words with their origin.
func (p *Program) Records() []Record {
	return append([]Record(nil), p.records...)
}

// Words returns the emitted words in order.
func (p *Program) Words() []Word {
	words := make([]Word, len(p.records))
	for i, e := range p.records {
		words[i] = e.Word
	}

	return words
}

package asm

import "github.com/sarchlab/asm8/isa"

type state int

const (
	expectInstruction state = iota
	expectArgument
)

func (s state) String() string {
	if s == expectInstruction {
		return "ExpectInstruction"
	}
	return "ExpectArgument"
}

// machine consumes sanitized, non-blank tokens. Whether a token is read as
// a mnemonic or as an argument depends on the state alone.
type machine struct {
	catalog *isa.Catalog
	program *Program
	onEmit  func(Record)

	state     state
	current   isa.InstructionSpec
	startLine int
	remaining int
}

func newMachine(catalog *isa.Catalog, onEmit func(Record)) *machine {
	return &machine{
		catalog: catalog,
		program: &Program{},
		onEmit:  onEmit,
		state:   expectInstruction,
	}
}

func (m *machine) feed(token string, line int) error {
	switch m.state {
	case expectInstruction:
		return m.feedInstruction(token, line)
	case expectArgument:
		return m.feedArgument(token, line)
	}

	panic("unknown assembler state")
}

func (m *machine) feedInstruction(token string, line int) error {
	spec, ok := m.catalog.SpecOf(token)
	if !ok {
		return &UnknownCommandError{Line: line, Token: token}
	}

	m.emit(Record{
		Word:     Word(spec.Opcode),
		Line:     line,
		Mnemonic: spec.Mnemonic,
		Role:     RoleOpcode,
	})

	if spec.Arity > 0 {
		m.state = expectArgument
		m.current = spec
		m.startLine = line
		m.remaining = spec.Arity
	}

	return nil
}

func (m *machine) feedArgument(token string, line int) error {
	width := m.catalog.WordSize()
	if !IsBinary(token) || len(token) > width {
		return &InvalidArgumentError{
			Line:     line,
			Mnemonic: m.current.Mnemonic,
			Text:     token,
			Width:    width,
		}
	}

	m.emit(Record{
		Word:     Pad(token, width),
		Line:     line,
		Mnemonic: m.current.Mnemonic,
		Role:     RoleOperand,
	})

	m.remaining--
	if m.remaining == 0 {
		m.state = expectInstruction
		m.current = isa.InstructionSpec{}
	}

	return nil
}

// finish is called once the source is exhausted.
func (m *machine) finish() error {
	if m.state == expectArgument {
		return &UnexpectedEndOfInputError{
			Mnemonic: m.current.Mnemonic,
			Line:     m.startLine,
			Missing:  m.remaining,
		}
	}

	return nil
}

func (m *machine) emit(e Record) {
	m.program.append(e)

	if m.onEmit != nil {
		m.onEmit(e)
	}
}

// Package asm translates assembly source into instruction memory words.
package asm

import (
	"errors"
	"io"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/asm8/isa"
)

// HookPosWordEmitted marks when a word is appended to the program. The hook
// item is the Record.
var HookPosWordEmitted = &sim.HookPos{Name: "Asm Word Emitted"}

// HookPosAssembleDone marks the end of a successful run. The hook item is
// the Program.
var HookPosAssembleDone = &sim.HookPos{Name: "Asm Done"}

// Assembler runs single-pass assembly against one instruction catalog.
type Assembler struct {
	sim.HookableBase

	name    string
	catalog *isa.Catalog
}

// Builder can create assemblers.
type Builder struct {
	catalog *isa.Catalog
	hooks   []sim.Hook
}

// NewBuilder returns a builder that uses the built-in catalog.
func NewBuilder() Builder {
	return Builder{
		catalog: isa.Default(),
	}
}

// WithCatalog sets the instruction catalog.
func (b Builder) WithCatalog(catalog *isa.Catalog) Builder {
	b.catalog = catalog
	return b
}

// WithHook attaches a hook to every assembler built.
func (b Builder) WithHook(hook sim.Hook) Builder {
	b.hooks = append(append([]sim.Hook(nil), b.hooks...), hook)
	return b
}

// Build creates an assembler.
func (b Builder) Build(name string) *Assembler {
	if b.catalog == nil {
		panic("assembler needs an instruction catalog")
	}

	a := &Assembler{
		name:    name,
		catalog: b.catalog,
	}

	for _, h := range b.hooks {
		a.AcceptHook(h)
	}

	return a
}

// Name returns the name of the assembler.
func (a *Assembler) Name() string {
	return a.name
}

// Catalog returns the instruction catalog in use.
func (a *Assembler) Catalog() *isa.Catalog {
	return a.catalog
}

// Assemble reads the whole source and returns the program. The run stops at
// the first error and no program is returned in that case.
func (a *Assembler) Assemble(src LineReader) (*Program, error) {
	m := newMachine(a.catalog, a.wordEmitted)
	lineNo := 0

	for {
		raw, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &IOError{Op: "read source", Err: err}
		}

		lineNo++

		token := Sanitize(raw)
		if token == "" {
			continue
		}

		if err := m.feed(token, lineNo); err != nil {
			return nil, err
		}
	}

	if err := m.finish(); err != nil {
		return nil, err
	}

	if a.NumHooks() > 0 {
		a.InvokeHook(sim.HookCtx{
			Domain: a,
			Pos:    HookPosAssembleDone,
			Item:   m.program,
		})
	}

	return m.program, nil
}

func (a *Assembler) wordEmitted(e Record) {
	if a.NumHooks() == 0 {
		return
	}

	a.InvokeHook(sim.HookCtx{
		Domain: a,
		Pos:    HookPosWordEmitted,
		Item:   e,
	})
}

// WordTracer is a hook that logs every emitted word at LevelTrace. A nil
// Logger means the default logger.
type WordTracer struct {
	Logger *slog.Logger
}

// Func implements sim.Hook.
func (t WordTracer) Func(ctx sim.HookCtx) {
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch ctx.Pos {
	case HookPosWordEmitted:
		e := ctx.Item.(Record)
		Trace(logger, "WordEmitted",
			"line", e.Line,
			"mnemonic", e.Mnemonic,
			"role", e.Role.String(),
			"word", string(e.Word),
		)
	case HookPosAssembleDone:
		Trace(logger, "AssembleDone", "words", ctx.Item.(*Program).Len())
	}
}

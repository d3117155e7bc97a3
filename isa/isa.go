// Package isa holds the instruction catalog of the 8-bit processor.
package isa

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultWordSize is the width of an instruction memory word, in bits.
const DefaultWordSize = 8

const maxWordSize = 64

//go:embed default.yaml
var defaultTable []byte

// InstructionSpec describes how one mnemonic is encoded.
type InstructionSpec struct {
	Mnemonic string
	// Opcode is the bit pattern of the instruction word, MSB first.
	Opcode string
	// Arity is the number of operand words that follow the opcode.
	Arity int
}

// Catalog maps mnemonics to their encoding. A Catalog is never modified
// after it is built, so it can be shared freely.
type Catalog struct {
	name     string
	wordSize int
	specs    map[string]InstructionSpec
}

// Name returns the name of the instruction set.
func (c *Catalog) Name() string {
	return c.name
}

// WordSize returns the number of bits in each word.
func (c *Catalog) WordSize() int {
	return c.wordSize
}

// Len returns the number of instructions.
func (c *Catalog) Len() int {
	return len(c.specs)
}

// IsKnown tells if the token is a mnemonic. Matching is case-sensitive.
func (c *Catalog) IsKnown(token string) bool {
	_, ok := c.specs[token]
	return ok
}

// SpecOf returns the encoding of a mnemonic.
func (c *Catalog) SpecOf(token string) (InstructionSpec, bool) {
	spec, ok := c.specs[token]
	return spec, ok
}

// Mnemonics returns all mnemonics in lexical order.
func (c *Catalog) Mnemonics() []string {
	names := make([]string, 0, len(c.specs))
	for name := range c.specs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

type tableDoc struct {
	Name         string     `yaml:"name"`
	WordSize     int        `yaml:"word_size"`
	Instructions []entryDoc `yaml:"instructions"`
}

type entryDoc struct {
	Mnemonic string `yaml:"mnemonic"`
	Opcode   string `yaml:"opcode"`
	Args     int    `yaml:"args"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in instruction set.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(defaultTable))
		if err != nil {
			panic(fmt.Sprintf("built-in instruction table is broken: %v", err))
		}

		defaultCatalog = c
	})

	return defaultCatalog
}

// LoadFile reads an instruction table from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Load decodes an instruction table in YAML form.
func Load(r io.Reader) (*Catalog, error) {
	var doc tableDoc

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("instruction table is empty")
		}
		return nil, fmt.Errorf("failed to decode instruction table: %w", err)
	}

	return build(doc)
}

func build(doc tableDoc) (*Catalog, error) {
	wordSize := doc.WordSize
	if wordSize == 0 {
		wordSize = DefaultWordSize
	}

	if wordSize < 0 || wordSize > maxWordSize {
		return nil, fmt.Errorf("word size %d out of range 1..%d",
			wordSize, maxWordSize)
	}

	if len(doc.Instructions) == 0 {
		return nil, errors.New("instruction table has no instructions")
	}

	c := &Catalog{
		name:     doc.Name,
		wordSize: wordSize,
		specs:    make(map[string]InstructionSpec, len(doc.Instructions)),
	}

	for i, e := range doc.Instructions {
		if err := c.register(e); err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i+1, err)
		}
	}

	return c, nil
}

func (c *Catalog) register(e entryDoc) error {
	switch {
	case e.Mnemonic == "":
		return errors.New("missing mnemonic")
	case strings.ContainsAny(e.Mnemonic, " \t;"):
		return fmt.Errorf("mnemonic %q contains a blank or comment character",
			e.Mnemonic)
	case c.IsKnown(e.Mnemonic):
		return fmt.Errorf("duplicate mnemonic %s", e.Mnemonic)
	case len(e.Opcode) != c.wordSize || strings.Trim(e.Opcode, "01") != "":
		return fmt.Errorf("opcode %q of %s is not a %d-bit binary string",
			e.Opcode, e.Mnemonic, c.wordSize)
	case e.Args < 0:
		return fmt.Errorf("negative argument count for %s", e.Mnemonic)
	}

	c.specs[e.Mnemonic] = InstructionSpec{
		Mnemonic: e.Mnemonic,
		Opcode:   e.Opcode,
		Arity:    e.Args,
	}

	return nil
}

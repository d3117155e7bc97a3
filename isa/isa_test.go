package isa_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/asm8/isa"
)

var _ = Describe("Default catalog", func() {
	var c *isa.Catalog

	BeforeEach(func() {
		c = isa.Default()
	})

	It("should be built only once", func() {
		Expect(isa.Default()).To(BeIdenticalTo(c))
	})

	It("should use 8-bit words", func() {
		Expect(c.WordSize()).To(Equal(8))
		Expect(c.Len()).To(Equal(16))
	})

	DescribeTable("instruction encodings",
		func(mnemonic, opcode string, arity int) {
			spec, ok := c.SpecOf(mnemonic)
			Expect(ok).To(BeTrue())
			Expect(spec.Mnemonic).To(Equal(mnemonic))
			Expect(spec.Opcode).To(Equal(opcode))
			Expect(spec.Arity).To(Equal(arity))
		},
		Entry("INC", "INC", "00000001", 1),
		Entry("DEC", "DEC", "00000010", 1),
		Entry("NOT", "NOT", "00000011", 1),
		Entry("JMP", "JMP", "00000100", 1),
		Entry("ADD", "ADD", "00010000", 2),
		Entry("SUB", "SUB", "00100000", 2),
		Entry("MUL", "MUL", "00110000", 2),
		Entry("DIV", "DIV", "01000000", 2),
		Entry("MOD", "MOD", "01010000", 2),
		Entry("AND", "AND", "01100000", 2),
		Entry("OR", "OR", "01110000", 2),
		Entry("XOR", "XOR", "10000000", 2),
		Entry("NAND", "NAND", "10010000", 2),
		Entry("NOR", "NOR", "10100000", 2),
		Entry("XNOR", "XNOR", "10110000", 2),
		Entry("COMP", "COMP", "11000000", 2),
	)

	It("should match mnemonics case-sensitively", func() {
		Expect(c.IsKnown("ADD")).To(BeTrue())
		Expect(c.IsKnown("add")).To(BeFalse())
		Expect(c.IsKnown("Add")).To(BeFalse())
		Expect(c.IsKnown("")).To(BeFalse())
	})

	It("should never treat a binary literal as a mnemonic", func() {
		Expect(c.IsKnown("00000001")).To(BeFalse())
	})

	It("should list mnemonics in order", func() {
		names := c.Mnemonics()
		Expect(names).To(HaveLen(16))
		Expect(names[0]).To(Equal("ADD"))
		Expect(names[len(names)-1]).To(Equal("XOR"))
	})
})

var _ = Describe("Load", func() {
	It("should load a custom table", func() {
		c, err := isa.Load(strings.NewReader(`
name: tiny
word_size: 4
instructions:
  - {mnemonic: HLT, opcode: "0000", args: 0}
  - {mnemonic: LDI, opcode: "0001", args: 1}
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Name()).To(Equal("tiny"))
		Expect(c.WordSize()).To(Equal(4))

		spec, ok := c.SpecOf("HLT")
		Expect(ok).To(BeTrue())
		Expect(spec.Arity).To(Equal(0))
	})

	It("should default the word size to 8", func() {
		c, err := isa.Load(strings.NewReader(`
instructions:
  - {mnemonic: NOP, opcode: "00000000", args: 0}
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.WordSize()).To(Equal(isa.DefaultWordSize))
	})

	DescribeTable("rejected tables",
		func(doc, msg string) {
			_, err := isa.Load(strings.NewReader(doc))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(msg))
		},
		Entry("empty document", "", "empty"),
		Entry("no instructions", "name: x\n", "no instructions"),
		Entry("unknown field",
			"instructions:\n  - {mnemonic: A, opcode: \"00000000\", args: 0, x: 1}\n",
			"decode"),
		Entry("missing mnemonic",
			"instructions:\n  - {opcode: \"00000000\", args: 0}\n",
			"missing mnemonic"),
		Entry("blank in mnemonic",
			"instructions:\n  - {mnemonic: \"A B\", opcode: \"00000000\", args: 0}\n",
			"blank or comment"),
		Entry("duplicate mnemonic",
			"instructions:\n  - {mnemonic: A, opcode: \"00000000\", args: 0}\n"+
				"  - {mnemonic: A, opcode: \"00000001\", args: 0}\n",
			"duplicate"),
		Entry("short opcode",
			"instructions:\n  - {mnemonic: A, opcode: \"0101\", args: 0}\n",
			"8-bit binary"),
		Entry("non-binary opcode",
			"instructions:\n  - {mnemonic: A, opcode: \"0000000x\", args: 0}\n",
			"8-bit binary"),
		Entry("negative arity",
			"instructions:\n  - {mnemonic: A, opcode: \"00000000\", args: -1}\n",
			"negative"),
		Entry("huge word size",
			"word_size: 65\ninstructions:\n  - {mnemonic: A, opcode: \"0\", args: 0}\n",
			"out of range"),
	)

	It("should load a table from a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "isa.yaml")
		Expect(os.WriteFile(path, []byte(
			"instructions:\n  - {mnemonic: NOP, opcode: \"00000000\", args: 0}\n",
		), 0o644)).To(Succeed())

		c, err := isa.LoadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.IsKnown("NOP")).To(BeTrue())
	})

	It("should report a missing file", func() {
		_, err := isa.LoadFile(filepath.Join(GinkgoT().TempDir(), "none.yaml"))
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})

package asm_test

import (
	"errors"
	"fmt"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/asm8/asm"
)

var _ = Describe("ExitCode", func() {
	DescribeTable("exit codes",
		func(err error, code int) {
			Expect(asm.ExitCode(err)).To(Equal(code))
		},
		Entry("invocation", &asm.InvocationError{Reason: "x"}, 1),
		Entry("io", &asm.IOError{Op: "open", Path: "a", Err: os.ErrNotExist}, 2),
		Entry("unknown command", &asm.UnknownCommandError{Line: 3, Token: "FOO"}, 3),
		Entry("unexpected end", &asm.UnexpectedEndOfInputError{Mnemonic: "ADD"}, 4),
		Entry("invalid argument", &asm.InvalidArgumentError{Text: "123"}, 5),
		Entry("wrapped", fmt.Errorf("run: %w",
			&asm.InvalidArgumentError{Text: "123"}), 5),
		Entry("foreign", errors.New("boom"), 1),
	)

	It("should map success to 0", func() {
		Expect(asm.ExitCode(nil)).To(Equal(0))
	})

	It("should unwrap the cause of an IO error", func() {
		err := &asm.IOError{Op: "open input file", Path: "a.asm", Err: os.ErrNotExist}
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("a.asm"))
	})

	It("should name line and token of an unknown command", func() {
		err := &asm.UnknownCommandError{Line: 3, Token: "FOO"}
		Expect(err.Error()).To(ContainSubstring("line 3"))
		Expect(err.Error()).To(ContainSubstring("FOO"))
	})
})

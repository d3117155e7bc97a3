package asm

import (
	"errors"
	"fmt"
)

// Process exit codes, one per failure class.
const (
	ExitOK              = 0
	ExitInvocation      = 1
	ExitIO              = 2
	ExitUnknownCommand  = 3
	ExitUnexpectedEnd   = 4
	ExitInvalidArgument = 5
)

// InvocationError reports a malformed command line.
type InvocationError struct {
	Reason string
}

func (e *InvocationError) Error() string {
	return e.Reason
}

// ExitCode returns the process exit code of the failure.
func (e *InvocationError) ExitCode() int { return ExitInvocation }

// IOError reports a file that could not be opened, read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code of the failure.
func (e *IOError) ExitCode() int { return ExitIO }

// UnknownCommandError reports a token that is not in the catalog.
type UnknownCommandError struct {
	Line  int
	Token string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("line %d: unknown command %q", e.Line, e.Token)
}

// ExitCode returns the process exit code of the failure.
func (e *UnknownCommandError) ExitCode() int { return ExitUnknownCommand }

// UnexpectedEndOfInputError reports a source that ends while an instruction
// still waits for arguments.
type UnexpectedEndOfInputError struct {
	Mnemonic string
	// Line is where the waiting instruction was written.
	Line    int
	Missing int
}

func (e *UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf(
		"line %d: end of input while %s still expects %d argument(s)",
		e.Line, e.Mnemonic, e.Missing)
}

// ExitCode returns the process exit code of the failure.
func (e *UnexpectedEndOfInputError) ExitCode() int { return ExitUnexpectedEnd }

// InvalidArgumentError reports an argument that is not a binary literal
// that fits in a word.
type InvalidArgumentError struct {
	Line     int
	Mnemonic string
	Text     string
	Width    int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf(
		"line %d: invalid argument %q for %s, expected a binary string of at most %d bits",
		e.Line, e.Text, e.Mnemonic, e.Width)
}

// ExitCode returns the process exit code of the failure.
func (e *InvalidArgumentError) ExitCode() int { return ExitInvalidArgument }

type exitCoder interface {
	ExitCode() int
}

// ExitCode maps an error to the process exit code. Errors outside the
// taxonomy count as a bad invocation.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	return ExitInvocation
}

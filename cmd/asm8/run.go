package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sarchlab/asm8/asm"
)

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		report(stderr, err)
	}

	return asm.ExitCode(err)
}

// report prints the diagnostic of a failed run.
func report(w io.Writer, err error) {
	var (
		invocation *asm.InvocationError
		ioErr      *asm.IOError
		unknown    *asm.UnknownCommandError
		eof        *asm.UnexpectedEndOfInputError
		invalid    *asm.InvalidArgumentError
	)

	switch {
	case errors.As(err, &invocation):
		fmt.Fprintf(w, "Error: %s\n", invocation.Reason)
		fmt.Fprintln(w, "Usage: asm8 [flags] <input_file.asm> <output_file.bin>")
	case errors.As(err, &ioErr) && ioErr.Path != "":
		fmt.Fprintf(w, "Error: Cannot %s '%s' (%v)\n",
			ioErr.Op, ioErr.Path, ioErr.Err)
	case errors.As(err, &unknown):
		fmt.Fprintf(w, "Error [Line %d]: Unknown command '%s'.\n",
			unknown.Line, unknown.Token)
	case errors.As(err, &eof):
		fmt.Fprintf(w, "Error: End of file reached while expecting an "+
			"argument for command '%s'.\n", eof.Mnemonic)
	case errors.As(err, &invalid):
		fmt.Fprintf(w, "Error [Line %d]: Invalid argument '%s' for command '%s'.\n",
			invalid.Line, invalid.Text, invalid.Mnemonic)
		fmt.Fprintf(w, "Expected an %d-bit binary string.\n", invalid.Width)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

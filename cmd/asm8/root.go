package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/sarchlab/asm8/asm"
	"github.com/sarchlab/asm8/emit"
	"github.com/sarchlab/asm8/isa"
	"github.com/spf13/cobra"
)

type options struct {
	isaPath string
	listing bool
	verbose bool

	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "asm8 <input_file.asm> <output_file.bin>",
		Short: "Assemble a program for the 8-bit processor",
		Long: `asm8 translates an assembly source into a binary memory image. Every
non-blank line of the source is either a mnemonic or, when the previous
mnemonic still needs operands, a binary literal of up to 8 bits. Text after
';' is a comment. The image holds one 8-bit word per line and is padded with
zero words to 128 lines.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &asm.InvocationError{Reason: fmt.Sprintf(
					"expected 2 arguments, got %d", len(args))}
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(stderr, opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return assembleFile(opts, args[0], args[1], stdout)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &asm.InvocationError{Reason: err.Error()}
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.isaPath, "isa", "",
		"load the instruction table from a YAML file")
	flags.BoolVar(&opts.listing, "listing", false,
		"print a listing of the emitted words")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false,
		"log every emitted word")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = asm.LevelTrace
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

func loadCatalog(path string) (*isa.Catalog, error) {
	if path == "" {
		return isa.Default(), nil
	}

	c, err := isa.LoadFile(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, &asm.IOError{
				Op: "open instruction table", Path: path, Err: pathErr.Err}
		}
		return nil, &asm.InvocationError{Reason: err.Error()}
	}

	return c, nil
}

func assembleFile(opts *options, inPath, outPath string, stdout io.Writer) (err error) {
	catalog, err := loadCatalog(opts.isaPath)
	if err != nil {
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return &asm.IOError{Op: "open input file", Path: inPath, Err: err}
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return &asm.IOError{Op: "open output file", Path: outPath, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &asm.IOError{Op: "close output file", Path: outPath, Err: cerr}
		}

		if err != nil {
			removeIfRegular(opts.logger, outPath)
		}
	}()

	opts.logger.Debug("Assembling",
		"input", inPath, "output", outPath,
		"isa", catalog.Name(), "instructions", catalog.Len())

	b := asm.NewBuilder().WithCatalog(catalog)
	if opts.verbose {
		b = b.WithHook(asm.WordTracer{Logger: opts.logger})
	}

	program, err := b.Build("Asm").Assemble(asm.ScanLines(in))
	if err != nil {
		return err
	}

	sink := emit.WriteLines(out)
	summary, err := emit.NewBuilder().
		WithWordSize(catalog.WordSize()).
		Build().
		Emit(sink, program)
	if err != nil {
		return err
	}

	if err := sink.Flush(); err != nil {
		return &asm.IOError{Op: "write output file", Path: outPath, Err: err}
	}

	fmt.Fprintf(stdout, "Compilation successful. %d lines of code generated.\n",
		summary.Words)
	fmt.Fprintf(stdout, "Output written to '%s'\n", outPath)

	if opts.listing {
		emit.WriteListing(stdout, program, summary)
	}

	return nil
}

// removeIfRegular deletes a failed output image. Symlinks and device nodes
// such as /dev/null are never unlinked.
func removeIfRegular(logger *slog.Logger, path string) {
	info, err := os.Lstat(path)
	if err != nil || !info.Mode().IsRegular() {
		return
	}

	if err := os.Remove(path); err != nil {
		logger.Debug("Failed to remove output", "path", path, "err", err)
	}
}

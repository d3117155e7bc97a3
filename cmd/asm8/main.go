// Command asm8 assembles a source file into a 128-word binary memory image
// for the 8-bit processor.
package main

import (
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	atexit.Exit(code)
}

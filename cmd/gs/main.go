// Command gs is the interpreter's CLI entry point: a positional script
// file (or stdin), --tokens/--ast inspection modes, and a `repl`
// subcommand, all wired through cobra the way the rest of the pack's
// tool-style repos structure their cmd/ trees.
package main

import (
	"os"

	"github.com/Saliba-codes/GadySH/cmd/gs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Command gradelang is the reference host for the GradeLang engine: an
// interactive REPL, a parser/formatter front end, and a small gradebook
// snapshot/diff tool built on top of the core language package.
package main

import (
	"fmt"
	"os"

	"github.com/gradelang/gradelang/cmd/gradelang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

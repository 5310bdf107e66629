package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gradelang/gradelang/parser"
	"github.com/gradelang/gradelang/printer"
	"github.com/spf13/cobra"
)

var (
	fmtWrite bool
	fmtList  bool
	fmtDiff  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format GradeLang source files",
	Long: `Format GradeLang source files by parsing them and re-rendering the
result through the AST printer.

By default fmt prints the formatted source to stdout. With -w it rewrites
the file in place; with -l it lists files whose formatting would change;
with -d it prints a line-oriented diff instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to source file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false, "display a diff instead of rewriting files")
}

func runFmt(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		if err := formatFile(path); err != nil {
			return err
		}
	}
	return nil
}

func formatFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	prog, err := parser.ParseProgram(string(data), path)
	if err != nil {
		return err
	}
	formatted := printer.PrintProgram(prog)

	changed := formatted != string(data)
	switch {
	case fmtList:
		if changed {
			fmt.Println(path)
		}
	case fmtDiff:
		if changed {
			printDiff(path, string(data), formatted)
		}
	case fmtWrite:
		if changed {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				return fmt.Errorf("failed to write file %s: %w", path, err)
			}
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}

// printDiff prints a minimal unified-style line diff; it is a debugging aid,
// not a byte-exact patch tool.
func printDiff(path, before, after string) {
	fmt.Printf("--- %s\n+++ %s (formatted)\n", path, path)
	beforeLines := bytes.Split([]byte(before), []byte("\n"))
	afterLines := bytes.Split([]byte(after), []byte("\n"))
	max := len(beforeLines)
	if len(afterLines) > max {
		max = len(afterLines)
	}
	for i := 0; i < max; i++ {
		var b, a []byte
		if i < len(beforeLines) {
			b = beforeLines[i]
		}
		if i < len(afterLines) {
			a = afterLines[i]
		}
		if !bytes.Equal(b, a) {
			if i < len(beforeLines) {
				fmt.Printf("-%s\n", b)
			}
			if i < len(afterLines) {
				fmt.Printf("+%s\n", a)
			}
		}
	}
}

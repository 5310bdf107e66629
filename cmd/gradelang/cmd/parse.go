package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gradelang/gradelang/parser"
	"github.com/gradelang/gradelang/printer"
	"github.com/spf13/cobra"
)

var (
	evalExpr     string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a GradeLang program and display it",
	Long: `Parse GradeLang source code and print it back via the AST printer.

If no file is provided, reads from stdin. Use -e to parse a single
expression from the command line. Use --dump-ast to print the raw
expression tree structure instead of re-rendered source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse an inline expression instead of a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the raw AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, name, err := readInput(args)
	if err != nil {
		return err
	}

	if evalExpr != "" {
		expr, err := parser.ParseProgram(fmt.Sprintf("_: %s", evalExpr), name)
		if err != nil {
			return err
		}
		if parseDumpAST {
			fmt.Printf("%#v\n", expr["_"])
			return nil
		}
		fmt.Println(printer.Print(expr["_"]))
		return nil
	}

	prog, err := parser.ParseProgram(input, name)
	if err != nil {
		return err
	}
	if parseDumpAST {
		fmt.Printf("%#v\n", prog)
		return nil
	}
	fmt.Print(printer.PrintProgram(prog))
	return nil
}

// readInput resolves the parse/lex commands' shared input convention:
// a file argument, or stdin when none is given.
func readInput(args []string) (input, name string, err error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}

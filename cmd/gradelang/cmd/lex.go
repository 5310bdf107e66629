package cmd

import (
	"fmt"

	"github.com/gradelang/gradelang/lexer"
	"github.com/spf13/cobra"
)

var (
	showPos  bool
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a GradeLang file or expression",
	Long: `Tokenize a GradeLang program and print the resulting token stream.
Useful for debugging the tokenizer and understanding how source is split
into INTEGER/UDOUBLE/PERCENT/IDENTIFIER tokens.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize an inline expression instead of a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func runLex(cmd *cobra.Command, args []string) error {
	var input string
	if evalExpr != "" {
		input = evalExpr
	} else {
		var err error
		input, _, err = readInput(args)
		if err != nil {
			return err
		}
	}

	for _, tok := range lexer.Tokenize(input) {
		printToken(tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	return nil
}

func printToken(tok lexer.Token) {
	var out string
	if showType {
		out = fmt.Sprintf("[%-10s]", tok.Type)
	}
	if tok.Type == lexer.EOF {
		out += " EOF"
	} else {
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		out += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(out)
}

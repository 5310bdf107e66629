package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gradelang/gradelang/eval"
	"github.com/gradelang/gradelang/ops"
	"github.com/gradelang/gradelang/printer"
	"github.com/gradelang/gradelang/program"
	"github.com/spf13/cobra"
)

var runManifest string

var runCmd = &cobra.Command{
	Use:   "run [program-file ...]",
	Short: "Load GradeLang programs and evaluate categories interactively",
	Long: `Load one or more GradeLang program files (and/or a --manifest roster),
register the reference operation dialect, and read queries from stdin.

Each input line is either a bare category name or "get <name>"; the
category is evaluated and printed as a percentage. "include <path>" (or
"i <path>") loads another program file without restarting. "quit" or "q"
exits.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runManifest, "manifest", "", "YAML manifest of program files to load")
}

// session wraps the live Context (with the reference operation dialect
// already registered), so "include" can add more data providers after
// construction.
type session struct {
	ctx *eval.Context
}

func newSession() *session {
	ctx := eval.NewContext()
	ctx.AddOperationProvider(ops.NewReferenceDialect())
	return &session{ctx: ctx}
}

func (s *session) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %s: %w", path, err)
	}
	prog, err := program.Parse(string(data), path)
	if err != nil {
		return fmt.Errorf("parse error in %s: %w", path, err)
	}
	s.ctx.AddDataProvider(prog)
	return nil
}

func runRepl(cmd *cobra.Command, args []string) error {
	sess := newSession()

	for _, path := range args {
		if err := sess.load(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Printf("Loaded program: %s\n", path)
	}

	if runManifest != "" {
		m, err := LoadManifest(runManifest)
		if err != nil {
			return fmt.Errorf("failed to load manifest %s: %w", runManifest, err)
		}
		for _, entry := range m.Programs {
			if err := sess.load(entry.Path); err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			label := entry.As
			if label == "" {
				label = entry.Path
			}
			fmt.Printf("Loaded program: %s\n", label)
		}
	}

	fmt.Println("GradeLang REPL. Outputs formatted as percentages. Type 'quit' or 'q' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "q" {
			return nil
		}

		if rest, ok := strings.CutPrefix(line, "include "); ok {
			handleInclude(sess, rest)
			continue
		}
		if rest, ok := strings.CutPrefix(line, "i "); ok {
			handleInclude(sess, rest)
			continue
		}

		name := line
		if rest, ok := strings.CutPrefix(line, "get "); ok {
			name = strings.TrimSpace(rest)
		}

		v, err := sess.ctx.GetCategoryValue(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Println(printer.FormatValue(v))
	}
}

func handleInclude(sess *session, rest string) {
	path := strings.TrimSpace(rest)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Usage: include <file-path>")
		return
	}
	if err := sess.load(path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Printf("Loaded program: %s\n", path)
}


package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/gradelang/gradelang/printer"
	"github.com/gradelang/gradelang/values"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [program-file ...] -- category [category ...]",
	Short: "Evaluate categories and write a JSON gradebook snapshot",
	Long: `Load one or more GradeLang program files, evaluate the named
categories, and write a JSON snapshot (one object per category, with both
its percent-formatted and raw numeric form) to a file or stdout.

The snapshot is meant to be compared across runs with "gradelang diff" —
for example, to see whether this week's homework changed the midterm
average.

Example:
  gradelang export coursework.grade --out week3.json -- midterm final avg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	files, queries := splitArgsOnDashDash(cmd, args)
	if len(queries) == 0 {
		return fmt.Errorf("no categories requested; list them after --")
	}

	sess := newSession()
	for _, path := range files {
		if err := sess.load(path); err != nil {
			return err
		}
	}

	out := "{}"
	for _, name := range queries {
		v, err := sess.ctx.GetCategoryValue(name)
		if err != nil {
			return fmt.Errorf("evaluating %q: %w", name, err)
		}
		raw := math.NaN()
		if g, ok := values.Cast(v, values.Grade); ok {
			raw = g.AsGrade()
		}
		out, err = sjson.Set(out, name+".percent", printer.FormatValue(v))
		if err != nil {
			return err
		}
		out, err = sjson.Set(out, name+".raw", raw)
		if err != nil {
			return err
		}
	}

	if exportOut == "" {
		fmt.Println(out)
		return nil
	}
	return os.WriteFile(exportOut, []byte(out+"\n"), 0o644)
}

// splitArgsOnDashDash separates the leading program-file arguments from the
// trailing category names, using cobra's "--" separator convention: cobra
// already strips the literal "--" from args, and cmd.ArgsLenAtDash reports
// how many args came before it (-1 when there was no "--").
func splitArgsOnDashDash(cmd *cobra.Command, args []string) (files, queries []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

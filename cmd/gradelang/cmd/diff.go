package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var diffEps float64

var diffCmd = &cobra.Command{
	Use:   "diff <before.json> <after.json>",
	Short: "Compare two gradebook snapshots produced by export",
	Long: `Compare two JSON snapshots written by "gradelang export" and report
which categories' raw values changed by more than --eps, plus any category
present in one snapshot but not the other.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().Float64Var(&diffEps, "eps", 1e-9, "minimum raw-value delta to report as changed")
}

func runDiff(cmd *cobra.Command, args []string) error {
	before, err := readSnapshot(args[0])
	if err != nil {
		return err
	}
	after, err := readSnapshot(args[1])
	if err != nil {
		return err
	}

	names := map[string]struct{}{}
	before.ForEach(func(key, _ gjson.Result) bool {
		names[key.String()] = struct{}{}
		return true
	})
	after.ForEach(func(key, _ gjson.Result) bool {
		names[key.String()] = struct{}{}
		return true
	})

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	changed := 0
	for _, name := range sorted {
		b := before.Get(name)
		a := after.Get(name)
		switch {
		case !b.Exists() && a.Exists():
			fmt.Printf("+ %s: %s\n", name, a.Get("percent").String())
			changed++
		case b.Exists() && !a.Exists():
			fmt.Printf("- %s: %s\n", name, b.Get("percent").String())
			changed++
		default:
			bRaw := b.Get("raw").Float()
			aRaw := a.Get("raw").Float()
			delta := aRaw - bRaw
			if delta < 0 {
				delta = -delta
			}
			if delta > diffEps {
				fmt.Printf("~ %s: %s -> %s\n", name, b.Get("percent").String(), a.Get("percent").String())
				changed++
			}
		}
	}
	if changed == 0 {
		fmt.Println("no changes")
	}
	return nil
}

func readSnapshot(path string) (gjson.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("invalid JSON snapshot: %s", path)
	}
	return gjson.ParseBytes(data), nil
}

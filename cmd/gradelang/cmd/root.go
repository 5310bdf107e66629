package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information (set by build flags).
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "gradelang",
	Short: "GradeLang interpreter and tooling",
	Long: `gradelang is the reference host for GradeLang, a small declarative
language for expressing grade computations.

A GradeLang program declares named categories bound to expressions built
from numeric literals, references to other categories, weighted list
constructors, and calls to built-in grading operations (drop lowest,
clamp, weighted mean, pass/fail thresholds, and the like). This tool loads
program files, evaluates requested categories, and offers parsing,
formatting, and gradebook-snapshot utilities around the same engine.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("gradelang version {{.Version}} (%s)\n", GitCommit))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = version
}

var rootCmd = &cobra.Command{
	Use:   "dialogwrap",
	Short: "Progressive-enhancement dialog wrapper demo and tooling",
	Long: `dialogwrap - A progressive-enhancement wrapper around a host's native modal
dialog widget.

The wrapper wires declarative open/close triggers and light dismissal,
polyfilling only where the host lacks native support, and manages the
page-level side effects of a modal dialog: scroll locking while open and
embedded media reset on close.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for config and journal files
func getBaseDir() string {
	return baseDir
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xmamo/craftlangc/internal/compiler"
	"github.com/xmamo/craftlangc/internal/errors"
)

var compileCmd = &cobra.Command{
	Use:   "compile <source> <outdir>",
	Short: "Compile a CraftLang source file into a datapack directory",
	Long: `Compile a CraftLang source file into a complete Minecraft datapack.

Examples:
  # Compile script.craft into a datapack named "out"
  craftlangc compile script.craft out`,
	Args: cobra.ExactArgs(2),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func runCompile(_ *cobra.Command, args []string) error {
	source, outDir := args[0], args[1]

	content, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}

	if err := compiler.ToFSPath(string(content), source, outDir); err != nil {
		if ce, ok := err.(*errors.CraftError); ok {
			fmt.Fprintln(os.Stderr, ce.Format(true))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	return nil
}

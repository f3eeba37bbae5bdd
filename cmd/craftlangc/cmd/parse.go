package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xmamo/craftlangc/internal/compiler"
	"github.com/xmamo/craftlangc/internal/errors"
)

var parseCmd = &cobra.Command{
	Use:   "parse <source>",
	Short: "Parse a CraftLang file and print its canonical stringification",
	Long: `Parse a CraftLang source file and print the canonical stringification
of the resulting concrete syntax tree, without compiling it to a datapack.

This exercises the parser's round-trip property directly: the printed
source should re-parse to an equal tree.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	source := args[0]

	content, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}

	tree, err := compiler.Parse(string(content), source)
	if err != nil {
		if ce, ok := err.(*errors.CraftError); ok {
			fmt.Fprintln(os.Stderr, ce.Format(true))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	fmt.Println(tree.String())
	return nil
}

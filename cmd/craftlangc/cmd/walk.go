package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xmamo/craftlangc/internal/charclass"
	"github.com/xmamo/craftlangc/internal/walker"
)

var walkCmd = &cobra.Command{
	Use:   "walk <source>",
	Short: "Dump the token stream the parser would consume",
	Long: `Walk a CraftLang source file and print the identifiers, literals, and
punctuation it recognizes at statement/expression boundaries, skipping
whitespace and newlines.

This is a debugging aid for the walker/parser boundary; it does not run
the real parser and performs no grammar validation.`,
	Args: cobra.ExactArgs(1),
	RunE: runWalk,
}

func init() {
	rootCmd.AddCommand(walkCmd)
}

func runWalk(_ *cobra.Command, args []string) error {
	source := args[0]

	content, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}

	w := walker.New(string(content))
	for {
		for {
			s, _ := w.MatchWhile(func(r rune) walker.MatchResult {
				if charclass.IsWhitespace(r) || charclass.IsNewline(r) {
					return walker.MatchContinue
				}
				return walker.MatchStop
			})
			if s == "" {
				break
			}
		}

		pos := w.Position()
		r := w.Ahead(1)
		if r == "" {
			break
		}

		switch {
		case charclass.IsIdentifierStart([]rune(r)[0]):
			lexeme, _ := w.MatchWhileOffset(func(offset int, ch rune) walker.MatchResult {
				if offset == 0 {
					if charclass.IsIdentifierStart(ch) {
						return walker.MatchContinue
					}
				} else if charclass.IsIdentifierContinue(ch) {
					return walker.MatchContinue
				}
				return walker.MatchStop
			})
			fmt.Printf("%d:%d\tidentifier\t%s\n", pos.Line, pos.Column, lexeme)

		case charclass.IsDigit([]rune(r)[0]):
			lexeme, _ := w.MatchWhile(func(ch rune) walker.MatchResult {
				if charclass.IsDigit(ch) {
					return walker.MatchContinue
				}
				return walker.MatchStop
			})
			fmt.Printf("%d:%d\tnumber\t%s\n", pos.Line, pos.Column, lexeme)

		default:
			ch := w.Advance(1)
			fmt.Printf("%d:%d\tpunct\t%s\n", pos.Line, pos.Column, ch)
		}
	}

	return nil
}

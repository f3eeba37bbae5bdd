package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "craftlangc",
	Short: "CraftLang compiler",
	Long: `craftlangc compiles a CraftLang source file into a Minecraft datapack.

CraftLang is a small imperative language that lowers to Minecraft
scoreboard and tag commands: branches and loops compile to auxiliary
.mcfunction files, since Minecraft command scripts have no in-file
control flow.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

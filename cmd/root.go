package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "weft",
	Short: "Indentation-aware structural insertion for source files",
	Long: `Weft inserts code fragments into source files at anchors you describe:
a literal line, a regular expression, an indentation-defined block, or a
pair of markers. The fragment is reformatted to match the surrounding
indentation style before it is spliced in, and every mutation captures the
original content first so it can be rolled back.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format (text, json)")
	rootCmd.PersistentFlags().String("config", "", "config file (default: .weft.yaml, then $HOME/.weft.yaml)")
}

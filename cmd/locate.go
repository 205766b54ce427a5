package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeweft/weft/internal/ui"
	"github.com/codeweft/weft/pkg/splice/dialect"
	"github.com/codeweft/weft/pkg/splice/executor"
	"github.com/codeweft/weft/pkg/splice/locator"
	"github.com/codeweft/weft/pkg/splice/resolver"
)

var locateCmd = &cobra.Command{
	Use:   "locate [file]",
	Short: "Find anchor matches in a file without modifying it",
	Long: `Locate runs an anchor against a file and prints every match with its
line and column span. Useful for checking what an insert would target.

Example usage:
  weft locate app.py -a "def main"
  weft locate main.go --regex 'func \w+\(' --output json
  weft locate app.py --block class`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
	addAnchorFlags(locateCmd)
	locateCmd.Flags().Bool("full-scan", false, "disable head/tail sampling on large files")
	locateCmd.Flags().Bool("suggest", false, "print near-miss candidates when nothing matches")
}

func runLocate(cmd *cobra.Command, args []string) error {
	target := args[0]
	raw, err := os.ReadFile(target)
	if err != nil {
		return fmt.Errorf("failed to read target: %w", err)
	}
	d := dialect.DetectFile(target, raw)

	anchor, err := anchorFromFlags(cmd, d)
	if err != nil {
		return err
	}

	fullScan, _ := cmd.Flags().GetBool("full-scan")
	text := string(raw)
	matches, err := resolver.SampledLocate(anchor, text, fullScan)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		if suggest, _ := cmd.Flags().GetBool("suggest"); suggest {
			if lit, ok := anchor.(*locator.LiteralMatcher); ok {
				fmt.Fprint(os.Stderr, ui.RenderSuggestions(locator.SuggestNearMatches(text, lit.Pattern)))
			}
		}
		return &executor.InsertError{
			Path:   target,
			Anchor: anchor.Description(),
			Stage:  executor.StateLocated,
			Reason: "anchor matched nothing",
			Err:    executor.ErrPatternNotFound,
		}
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}
	fmt.Print(ui.RenderMatches(target, matches))
	return nil
}

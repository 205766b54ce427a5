package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeweft/weft/internal/structural"
	"github.com/codeweft/weft/pkg/splice"
	"github.com/codeweft/weft/pkg/splice/dialect"
	"github.com/codeweft/weft/pkg/splice/locator"
)

// addAnchorFlags registers the flag set both insert and locate share.
func addAnchorFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("anchor", "a", "", "literal anchor text")
	cmd.Flags().StringP("regex", "r", "", "regular expression anchor")
	cmd.Flags().String("regex-flags", "", "inline regex flags, e.g. im")
	cmd.Flags().String("block", "", "block anchor kind (function, class, conditional, try, any)")
	cmd.Flags().StringSlice("markers", nil, "start and end marker pair")
	cmd.Flags().Bool("include-markers", false, "marker spans include the markers themselves")
	cmd.Flags().String("query", "", "tree-sitter structural query anchor")
	cmd.Flags().String("query-lang", "", "language for --query (go, python)")
	cmd.Flags().BoolP("ignore-case", "i", false, "case-insensitive literal matching")
}

// anchorFromFlags builds the anchor the flags describe. Exactly one anchor
// shape must be given.
func anchorFromFlags(cmd *cobra.Command, d *dialect.Dialect) (splice.Anchor, error) {
	literal, _ := cmd.Flags().GetString("anchor")
	regex, _ := cmd.Flags().GetString("regex")
	block, _ := cmd.Flags().GetString("block")
	markers, _ := cmd.Flags().GetStringSlice("markers")
	query, _ := cmd.Flags().GetString("query")

	given := 0
	for _, s := range []string{literal, regex, block, query} {
		if s != "" {
			given++
		}
	}
	if len(markers) > 0 {
		given++
	}
	if given != 1 {
		return nil, fmt.Errorf("exactly one of --anchor, --regex, --block, --markers, --query is required")
	}

	switch {
	case literal != "":
		ignoreCase, _ := cmd.Flags().GetBool("ignore-case")
		return splice.Literal(literal, !ignoreCase), nil
	case regex != "":
		flags, _ := cmd.Flags().GetString("regex-flags")
		return splice.Regex(regex, flags), nil
	case block != "":
		return splice.Block(locator.BlockKind(block), d), nil
	case query != "":
		lang, _ := cmd.Flags().GetString("query-lang")
		if lang == "" {
			return nil, fmt.Errorf("--query requires --query-lang")
		}
		return structural.NewMatcher(lang, query), nil
	default:
		if len(markers) != 2 {
			return nil, fmt.Errorf("--markers needs exactly a start and an end marker")
		}
		include, _ := cmd.Flags().GetBool("include-markers")
		return splice.Markers(markers[0], markers[1], include), nil
	}
}

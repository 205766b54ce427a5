package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codeweft/weft/internal/backup"
	"github.com/codeweft/weft/internal/config"
	"github.com/codeweft/weft/internal/logger"
	"github.com/codeweft/weft/internal/syntax"
	"github.com/codeweft/weft/internal/ui"
	"github.com/codeweft/weft/pkg/splice"
	"github.com/codeweft/weft/pkg/splice/dialect"
	"github.com/codeweft/weft/pkg/splice/executor"
	"github.com/codeweft/weft/pkg/splice/resolver"
)

var insertCmd = &cobra.Command{
	Use:   "insert [file]",
	Short: "Insert a fragment into a source file at an anchor",
	Long: `Insert locates an anchor in the target file, reformats the fragment to
the file's indentation style, and splices it in before, after, or inside
the match.

Example usage:
  weft insert app.py -a "app = Flask(__name__)" -f "configure(app)" --mode after
  weft insert main.go --block function --mode inside -f "log.Println(\"hi\")"
  weft insert conf.ini --markers "# BEGIN" --markers "# END" --mode inside -f "key = value"`,
	Args: cobra.ExactArgs(1),
	RunE: runInsert,
}

func init() {
	rootCmd.AddCommand(insertCmd)
	addAnchorFlags(insertCmd)

	insertCmd.Flags().StringP("fragment", "f", "", "fragment text to insert")
	insertCmd.Flags().String("fragment-file", "", "read the fragment from a file")
	insertCmd.Flags().StringP("mode", "m", "after", "insertion mode (before, after, inside)")
	insertCmd.Flags().Bool("all", false, "insert at every match instead of the first")
	insertCmd.Flags().Int("depth", -1, "only consider matches at this indentation depth")
	insertCmd.Flags().Bool("force", false, "proceed even when the safety check fails")
	insertCmd.Flags().Bool("full-scan", false, "disable head/tail sampling on large files")
	insertCmd.Flags().Bool("preserve-indent", false, "keep the fragment's own indentation")
	insertCmd.Flags().Bool("dry-run", false, "resolve and format without writing")
	insertCmd.Flags().Bool("no-backup", false, "skip the on-disk snapshot")
	insertCmd.Flags().Bool("validate", false, "parse the result and report syntax errors")
}

func runInsert(cmd *cobra.Command, args []string) error {
	target := args[0]
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("target not usable: %w", err)
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	fragment, err := fragmentFromFlags(cmd)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(target)
	if err != nil {
		return fmt.Errorf("failed to read target: %w", err)
	}
	d := dialect.DetectFile(target, raw)

	anchor, err := anchorFromFlags(cmd, d)
	if err != nil {
		return err
	}

	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := parseMode(modeFlag)
	if err != nil {
		return err
	}

	opts := executor.Options{}
	opts.AllMatches, _ = cmd.Flags().GetBool("all")
	opts.Force, _ = cmd.Flags().GetBool("force")
	opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
	fullScan, _ := cmd.Flags().GetBool("full-scan")
	opts.FullScan = fullScan || cfg.Insertion.DisableSampling
	preserve, _ := cmd.Flags().GetBool("preserve-indent")
	opts.PreserveIndentation = preserve || cfg.Insertion.PreserveIndentation
	if depth, _ := cmd.Flags().GetInt("depth"); depth >= 0 {
		opts.TargetDepth = &depth
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	var log logger.Logger = logger.Quiet{}
	if verbose {
		log = logger.NewStdout()
	}

	// Snapshot before mutating; the engine's in-memory record covers
	// rollback within this process, the snapshot covers everything after.
	noBackup, _ := cmd.Flags().GetBool("no-backup")
	if cfg.Backup.Enabled && !noBackup && !opts.DryRun {
		mgr := backup.NewManager(cfg.Backup.Dir)
		if _, err := mgr.CreateSnapshot(target); err != nil {
			return err
		}
		if err := mgr.Prune(target, cfg.Backup.Keep); err != nil {
			return err
		}
	}

	engine := splice.NewEngine(log).WithDialect(d)
	result, err := engine.Insert(target, anchor, fragment, mode, opts)
	if err != nil {
		var insErr *executor.InsertError
		if errors.As(err, &insErr) && len(insErr.Suggestions) > 0 {
			fmt.Fprint(os.Stderr, ui.RenderSuggestions(insErr.Suggestions))
		}
		return err
	}

	validate, _ := cmd.Flags().GetBool("validate")
	if (validate || cfg.Insertion.ValidateAfterInsert) && !opts.DryRun {
		if err := validateTarget(cmd.Context(), target, d.Name, engine); err != nil {
			return err
		}
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	fmt.Print(ui.RenderResult(result))
	return nil
}

// validateTarget parses the mutated file and rolls the insertion back when
// the parse finds errors the soft check missed.
func validateTarget(ctx context.Context, target, dialectName string, engine *splice.Engine) error {
	if ctx == nil {
		ctx = context.Background()
	}
	content, err := os.ReadFile(target)
	if err != nil {
		return fmt.Errorf("failed to re-read target for validation: %w", err)
	}
	findings, err := syntax.NewValidator().Check(ctx, content, dialectName)
	if err != nil {
		return err
	}
	if len(findings) == 0 {
		return nil
	}
	restored := engine.Rollback(target)
	var b strings.Builder
	for _, f := range findings {
		b.WriteString("  " + f.String() + "\n")
	}
	return fmt.Errorf("insertion produced syntax errors (rolled back: %v):\n%s", restored, b.String())
}

func fragmentFromFlags(cmd *cobra.Command) (string, error) {
	fragment, _ := cmd.Flags().GetString("fragment")
	fragmentFile, _ := cmd.Flags().GetString("fragment-file")
	switch {
	case fragment != "" && fragmentFile != "":
		return "", fmt.Errorf("--fragment and --fragment-file are mutually exclusive")
	case fragment != "":
		return fragment, nil
	case fragmentFile != "":
		data, err := os.ReadFile(fragmentFile)
		if err != nil {
			return "", fmt.Errorf("failed to read fragment file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("a fragment is required (--fragment or --fragment-file)")
	}
}

func parseMode(s string) (resolver.Mode, error) {
	switch resolver.Mode(strings.ToLower(s)) {
	case resolver.Before:
		return resolver.Before, nil
	case resolver.After:
		return resolver.After, nil
	case resolver.Inside:
		return resolver.Inside, nil
	}
	return "", fmt.Errorf("unknown mode %q (want before, after, or inside)", s)
}

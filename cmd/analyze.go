package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/codeweft/weft/internal/logger"
	"github.com/codeweft/weft/internal/ui"
	"github.com/codeweft/weft/pkg/splice/dialect"
	"github.com/codeweft/weft/pkg/splice/indent"
	"github.com/codeweft/weft/pkg/splice/locator"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Report the indentation profile of a file or directory",
	Long: `Analyze inspects source files and reports how they indent: the unit
(spaces or tabs), the dominant width, and how consistently the file sticks
to it. Given a directory it walks the tree and profiles each source file.

Example usage:
  weft analyze app.py
  weft analyze ./src --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

type fileProfile struct {
	Path    string         `json:"path"`
	Dialect string         `json:"dialect"`
	Profile indent.Profile `json:"profile"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	fi, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("path not usable: %w", err)
	}

	var profiles []fileProfile
	collect := func(path string) error {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		profiles = append(profiles, fileProfile{
			Path:    path,
			Dialect: dialect.DetectFile(path, raw).Name,
			Profile: indent.AnalyzeWindow(locator.SplitLines(string(raw))),
		})
		return nil
	}

	if !fi.IsDir() {
		if err := collect(target); err != nil {
			return err
		}
	} else {
		walk := func() error { return walkSourceFiles(target, collect) }
		if logger.IsInteractive() {
			ctx, cancel := ui.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()
			if err := ui.RunSpinner(ctx, "Analyzing indentation...", walk); err != nil {
				return err
			}
		} else if err := walk(); err != nil {
			return err
		}
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profiles)
	}
	for _, p := range profiles {
		fmt.Print(ui.RenderProfile(p.Path+" ("+p.Dialect+")", p.Profile))
	}
	return nil
}

var skipDirs = map[string]bool{
	"node_modules": true, "vendor": true, ".git": true,
	"__pycache__": true, ".venv": true, "venv": true,
}

func walkSourceFiles(root string, fn func(string) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		name := info.Name()
		if info.IsDir() {
			if skipDirs[name] || (strings.HasPrefix(name, ".") && path != root) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		if dialect.DetectFile(path, raw).Name == "generic" && !looksLikeText(raw) {
			return nil
		}
		return fn(path)
	})
}

func looksLikeText(raw []byte) bool {
	for _, b := range raw {
		if b == 0 {
			return false
		}
	}
	return true
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"home/internal/diag"
	"home/internal/diagfmt"
	"home/internal/driver"
	"home/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.hm|directory]",
	Short: "Borrow-check home source files",
	Long: `Check lexes, parses, and borrow-checks the given file or every *.hm file
under the given directory. Without an argument it checks the nearest
home.toml project's entry.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory checking (0=auto)")
	checkCmd.Flags().Bool("disk-cache", false, "skip files the result cache knows are clean")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	target, maxDiagnostics, err := resolveCheckTarget(args, maxDiagnostics, cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}

	color := useColor(cmd, os.Stdout)

	var results []*driver.Result
	if info.IsDir() {
		var cache *driver.Cache
		if useCache {
			cache, err = driver.OpenCache("home")
			if err != nil {
				return fmt.Errorf("failed to open result cache: %w", err)
			}
		}
		dirRes, err := driver.CheckDir(cmd.Context(), target, maxDiagnostics, jobs, cache)
		if err != nil {
			return err
		}
		results = dirRes.Files
	} else {
		res, err := driver.CheckFile(target, maxDiagnostics)
		if err != nil {
			return err
		}
		results = []*driver.Result{res}
	}

	hasErrors := false
	for _, res := range results {
		if err := res.Render(os.Stdout, format, color); err != nil {
			return err
		}
		if res.Bag.HasErrors() {
			hasErrors = true
		}
	}

	if format == "pretty" && !quiet {
		merged := mergeBags(results)
		diagfmt.Summary(os.Stdout, merged, color)
	}

	if hasErrors {
		os.Exit(1)
	}
	return nil
}

// resolveCheckTarget picks the path to check: the explicit argument, or the
// project entry from the nearest home.toml. The manifest's max-diagnostics
// applies only when the flag was left at its default.
func resolveCheckTarget(args []string, maxDiagnostics int, cmd *cobra.Command) (string, int, error) {
	if len(args) == 1 {
		return args[0], maxDiagnostics, nil
	}
	manifest, ok, err := project.Load(".")
	if err != nil {
		return "", 0, err
	}
	if !ok {
		return "", 0, fmt.Errorf("no %s found\nplease specify a file or directory, e.g.:\n  home check path/to/file.hm", project.ManifestName)
	}
	if manifest.Config.Check.MaxDiagnostics > 0 && !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		maxDiagnostics = manifest.Config.Check.MaxDiagnostics
	}
	return manifest.EntryPath(), maxDiagnostics, nil
}

func mergeBags(results []*driver.Result) *diag.Bag {
	merged := diag.NewBag(0)
	for _, res := range results {
		merged.Merge(res.Bag)
	}
	return merged
}

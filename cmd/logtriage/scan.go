package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-errors/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/psalmeida/logtriage/pkg/aggregate"
	"github.com/psalmeida/logtriage/pkg/report"
	"github.com/psalmeida/logtriage/pkg/rules"
	"github.com/psalmeida/logtriage/pkg/scanner"
	"github.com/psalmeida/logtriage/pkg/tracing"
)

type scanOptions struct {
	inputs      []string
	output      string
	basename    string
	rulesFile   string
	rulesFirst  bool
	exportJSON  bool
	concurrency int
	quiet       bool
}

func scanCmd() *cobra.Command {
	var opts scanOptions

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan log files and write the error reports",
		Long: `Scan .txt log files (or directories of them), classify each line against
the error-pattern rules, and write the detailed CSV, summary CSV and
Markdown summary into the output directory.

Examples:
  logtriage scan -i ./logs -o ./reports
  logtriage scan -i psm1.txt -i psm2.txt -o ./reports -b psm --json
  logtriage scan -i ./logs -o ./reports --rules mypatterns.yaml --rules-first`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.inputs, "input", "i", nil, ".txt files and/or directories with logs (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory for the reports")
	cmd.Flags().StringVarP(&opts.basename, "basename", "b", "logs", "base prefix for the output files")
	cmd.Flags().StringVar(&opts.rulesFile, "rules", "", "YAML file with additional pattern rules")
	cmd.Flags().BoolVar(&opts.rulesFirst, "rules-first", false, "try user rules before the builtin ones")
	cmd.Flags().BoolVar(&opts.exportJSON, "json", false, "also export a JSON summary")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", runtime.NumCPU(), "max files scanned in parallel")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the progress bar and terminal table")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runScan(cmd *cobra.Command, opts scanOptions) error {
	ctx, span := tracing.Tracer().Start(cmd.Context(), "scan")
	defer span.End()

	set, err := buildRuleSet(opts.rulesFile, opts.rulesFirst)
	if err != nil {
		return err
	}

	files, skipped := scanner.ResolveInputs(opts.inputs)
	slog.Info("Scanning", "files", len(files), "rules", set.Len())

	var progress func()
	if !opts.quiet && len(files) > 0 {
		bar := progressbar.Default(int64(len(files)), "scanning")
		progress = func() { _ = bar.Add(1) }
	}

	events, skippedScans, err := scanner.Scan(ctx, files, set, opts.concurrency, progress)
	if err != nil {
		return errors.Errorf("scan: %w", err)
	}
	skipped = append(skipped, skippedScans...)

	detailed, summary := aggregate.Aggregate(events)

	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return errors.Errorf("create output directory: %w", err)
	}

	detCSV := filepath.Join(opts.output, opts.basename+"_detailed.csv")
	sumCSV := filepath.Join(opts.output, opts.basename+"_summary.csv")
	sumMD := filepath.Join(opts.output, opts.basename+"_summary.md")

	if err := report.WriteDetailedCSV(detCSV, detailed); err != nil {
		return err
	}
	if err := report.WriteSummaryCSV(sumCSV, summary); err != nil {
		return err
	}
	if err := report.WriteMarkdown(sumMD, summary); err != nil {
		return err
	}
	if opts.exportJSON {
		sumJSON := filepath.Join(opts.output, opts.basename+"_summary.json")
		if err := report.WriteSummaryJSON(sumJSON, summary); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "JSON:     %s\n", sumJSON)
	}

	if !opts.quiet && len(summary) > 0 {
		if err := report.RenderTable(os.Stdout, summary); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "Detailed: %s\nSummary:  %s\nMarkdown: %s\n", detCSV, sumCSV, sumMD)
	fmt.Fprintf(os.Stderr, "%d events in %d categories from %d files\n", len(detailed), len(summary), len(files))

	reportSkipped(skipped)

	fmt.Fprintf(os.Stderr, "Run 'logtriage chart -s %s' to render charts.\n", sumCSV)
	return nil
}

// buildRuleSet combines the builtin rules with an optional user rule file.
// Order decides classification priority, so --rules-first lets user rules
// shadow the builtins.
func buildRuleSet(rulesFile string, rulesFirst bool) (*rules.Set, error) {
	rs := rules.Builtin()
	if rulesFile != "" {
		user, err := rules.LoadFile(rulesFile)
		if err != nil {
			return nil, err
		}
		if rulesFirst {
			rs = append(user, rs...)
		} else {
			rs = append(rs, user...)
		}
	}
	return rules.NewSet(rs)
}

// reportSkipped prints the per-file warnings collected during the run.
// Skips are best-effort information, never a failure.
func reportSkipped(skipped []scanner.SkippedFile) {
	if len(skipped) == 0 {
		return
	}
	slog.Warn("Some inputs were skipped", "count", len(skipped))
	for _, s := range skipped {
		fmt.Fprintf(os.Stderr, "  skipped %s: %v\n", s.Path, s.Err)
	}
}

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/psalmeida/logtriage/pkg/rules"
	"github.com/psalmeida/logtriage/pkg/scanner"
	"github.com/psalmeida/logtriage/pkg/suggest"
)

func suggestCmd() *cobra.Command {
	var inputs []string
	var rulesFile string
	var rulesFirst bool
	var minCount int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Discover candidate rules from unmatched log lines",
		Long: `Scan the inputs and cluster every line that no current rule classifies.
Recurring templates are printed as candidate rules to add to the rule file.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			set, err := buildRuleSet(rulesFile, rulesFirst)
			if err != nil {
				return err
			}
			return runSuggest(inputs, set, minCount)
		},
	}

	cmd.Flags().StringSliceVarP(&inputs, "input", "i", nil, ".txt files and/or directories with logs (repeatable)")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML file with additional pattern rules")
	cmd.Flags().BoolVar(&rulesFirst, "rules-first", false, "try user rules before the builtin ones")
	cmd.Flags().IntVar(&minCount, "min-count", 2, "minimum occurrences for a candidate template")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runSuggest(inputs []string, set *rules.Set, minCount int) error {
	files, skipped := scanner.ResolveInputs(inputs)

	discoverer, err := suggest.NewDiscoverer()
	if err != nil {
		return err
	}

	var unmatched int
	for _, path := range files {
		lines, err := unmatchedLines(path, set)
		if err != nil {
			skipped = append(skipped, scanner.SkippedFile{Path: path, Err: err})
			continue
		}
		unmatched += len(lines)
		if err := discoverer.Feed(lines); err != nil {
			return err
		}
	}

	candidates, err := discoverer.Candidates(minCount)
	if err != nil {
		return err
	}

	slog.Info("Clustered unmatched lines", "files", len(files), "unmatched", unmatched, "candidates", len(candidates))
	if len(candidates) == 0 {
		fmt.Fprintln(os.Stderr, "No recurring unmatched templates found.")
		reportSkipped(skipped)
		return nil
	}

	fmt.Printf("%-38s %8s  %s\n", "ID", "COUNT", "TEMPLATE")
	for _, c := range candidates {
		fmt.Printf("%-38s %8d  %s\n", c.ID, c.Count, c.Template)
	}
	fmt.Fprintln(os.Stderr, "Promote useful templates into your --rules file to start counting them.")

	reportSkipped(skipped)
	return nil
}

// unmatchedLines returns the lines of one file that no rule classifies.
func unmatchedLines(path string, set *rules.Set) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	// Increase buffer for long lines
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if _, ok := set.Classify(line); !ok {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Errorf("read log file: %w", err)
	}
	return lines, nil
}

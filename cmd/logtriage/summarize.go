package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/psalmeida/logtriage/pkg/summarizer"
)

var summarizeModel string

func summarizeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "summarize <summary.md>",
		Short: "Send the Markdown summary to an LLM for diagnosis",
		Long: `Read a Markdown summary report, send it to the configured chat model,
and save the returned root-cause analysis next to the input.

Requires OPENROUTER_API_KEY environment variable to be set.

Examples:
  logtriage summarize reports/logs_summary.md
  logtriage summarize reports/logs_summary.md -o analysis.md --model z-ai/glm-4.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output .md path (default: derived from input)")
	cmd.Flags().StringVar(&summarizeModel, "model", "", "LLM model (default: $MODEL_NAME or "+"z-ai/glm-4.5)")
	return cmd
}

func runSummarize(cmd *cobra.Command, input, output string) error {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return errors.New("OPENROUTER_API_KEY environment variable is required")
	}

	markdown, err := os.ReadFile(input)
	if err != nil {
		return errors.Errorf("read summary report: %w", err)
	}

	if output == "" {
		stem := strings.TrimSuffix(input, filepath.Ext(input))
		output = fmt.Sprintf("%s_analysis_%s.md", stem, time.Now().Format("20060102_150405"))
	}

	fmt.Fprintln(os.Stderr, "Requesting analysis...")
	analysis, err := summarizer.Summarize(cmd.Context(), summarizer.Config{
		APIKey: apiKey,
		Model:  summarizeModel,
	}, string(markdown))
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, []byte(analysis), 0o644); err != nil {
		return errors.Errorf("write analysis: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Analysis: %s\n", output)
	return nil
}

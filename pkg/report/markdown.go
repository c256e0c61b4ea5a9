package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"

	"github.com/psalmeida/logtriage/pkg/aggregate"
)

// RenderMarkdown produces the human-readable summary report consumed by
// reviewers and by the AI summarizer.
func RenderMarkdown(summary aggregate.Summary) string {
	var b strings.Builder
	b.WriteString("# Detected Error Summary\n\n")
	fmt.Fprintf(&b, "- Error categories: **%d**\n", len(summary))
	fmt.Fprintf(&b, "- Total occurrences: **%d**\n\n", summary.Total())

	if len(summary) == 0 {
		b.WriteString("> No mapped errors.\n")
		return b.String()
	}

	b.WriteString("| Error | Count | % | Severity | First seen | Last seen | Affected files |\n")
	b.WriteString("|---|---:|---:|---|---|---|---|\n")
	for _, row := range summary {
		names := make([]string, len(row.Files))
		for i, f := range row.Files {
			names[i] = filepath.Base(f)
		}
		fmt.Fprintf(&b, "| %s | %d | %.1f | %s | %s | %s | %s |\n",
			row.Label,
			row.Count,
			row.Percentage,
			orDash(string(row.Severity)),
			orDash(formatTime(row.FirstSeen)),
			orDash(formatTime(row.LastSeen)),
			orDash(strings.Join(names, ", ")),
		)
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// WriteMarkdown renders the summary and writes it to path.
func WriteMarkdown(path string, summary aggregate.Summary) error {
	if err := os.WriteFile(path, []byte(RenderMarkdown(summary)), 0o644); err != nil {
		return errors.Errorf("write markdown report: %w", err)
	}
	return nil
}

// Package report renders the detailed and summary tables to CSV, Markdown,
// JSON and the terminal. Writers consume the aggregate tables verbatim and
// never reinterpret their semantics.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-errors/errors"

	"github.com/psalmeida/logtriage/pkg/aggregate"
)

const timestampLayout = "2006-01-02T15:04:05"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timestampLayout)
}

// WriteDetailedCSV writes the detailed occurrence table to path, one row
// per match event in scan order.
func WriteDetailedCSV(path string, detailed aggregate.Detailed) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Errorf("create detailed CSV: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"error_name", "file", "line", "severity", "timestamp", "message"}); err != nil {
		return errors.Errorf("write header: %w", err)
	}
	for _, ev := range detailed {
		row := []string{
			ev.Label,
			ev.SourceFile,
			strconv.Itoa(ev.LineNumber),
			string(ev.Severity),
			formatTime(ev.Timestamp),
			ev.RawText,
		}
		if err := w.Write(row); err != nil {
			return errors.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Errorf("flush detailed CSV: %w", err)
	}
	return nil
}

// WriteSummaryCSV writes the ranked summary table to path, preserving the
// aggregator's ordering.
func WriteSummaryCSV(path string, summary aggregate.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Errorf("create summary CSV: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := []string{"error_name", "count", "percentage", "severity", "first_seen", "last_seen", "files", "sample_message"}
	if err := w.Write(header); err != nil {
		return errors.Errorf("write header: %w", err)
	}
	for _, row := range summary {
		rec := []string{
			row.Label,
			strconv.Itoa(row.Count),
			fmt.Sprintf("%.2f", row.Percentage),
			string(row.Severity),
			formatTime(row.FirstSeen),
			formatTime(row.LastSeen),
			strings.Join(row.Files, ";"),
			row.Sample,
		}
		if err := w.Write(rec); err != nil {
			return errors.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Errorf("flush summary CSV: %w", err)
	}
	return nil
}

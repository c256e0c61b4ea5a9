package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-errors/errors"

	"github.com/psalmeida/logtriage/pkg/aggregate"
	"github.com/psalmeida/logtriage/pkg/rules"
)

// ReadSummaryCSV loads a summary report written by WriteSummaryCSV so that
// downstream consumers (charts, queries) can run against a previous run's
// artifacts. Row order is preserved as written.
func ReadSummaryCSV(path string) (aggregate.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("open summary CSV: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, errors.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"error_name", "count"} {
		if _, ok := col[required]; !ok {
			return nil, errors.Errorf("summary CSV missing %q column", required)
		}
	}

	field := func(rec []string, name string) string {
		if i, ok := col[name]; ok && i < len(rec) {
			return rec[i]
		}
		return ""
	}

	var summary aggregate.Summary
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Errorf("read row: %w", err)
		}

		count, err := strconv.Atoi(field(rec, "count"))
		if err != nil {
			return nil, errors.Errorf("row %q: bad count: %w", field(rec, "error_name"), err)
		}
		row := aggregate.SummaryRow{
			Label:    field(rec, "error_name"),
			Count:    count,
			Severity: rules.Severity(field(rec, "severity")),
			Sample:   field(rec, "sample_message"),
		}
		if pct := field(rec, "percentage"); pct != "" {
			row.Percentage, err = strconv.ParseFloat(pct, 64)
			if err != nil {
				return nil, errors.Errorf("row %q: bad percentage: %w", row.Label, err)
			}
		}
		if ts := field(rec, "first_seen"); ts != "" {
			row.FirstSeen, _ = time.Parse(timestampLayout, ts)
		}
		if ts := field(rec, "last_seen"); ts != "" {
			row.LastSeen, _ = time.Parse(timestampLayout, ts)
		}
		if files := field(rec, "files"); files != "" {
			row.Files = strings.Split(files, ";")
		}
		summary = append(summary, row)
	}
	return summary, nil
}

package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/go-errors/errors"
	"github.com/google/uuid"

	"github.com/psalmeida/logtriage/pkg/aggregate"
)

// Version is the report schema version stamped into JSON exports.
const Version = "1"

// summaryJSON wraps the summary rows with run metadata.
type summaryJSON struct {
	Version     string       `json:"version"`
	RunID       string       `json:"run_id"`
	GeneratedAt string       `json:"generated_at"`
	TotalEvents int          `json:"total_events"`
	Errors      []summaryRow `json:"errors"`
}

type summaryRow struct {
	Label      string   `json:"error_name"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
	Severity   string   `json:"severity,omitempty"`
	FirstSeen  string   `json:"first_seen,omitempty"`
	LastSeen   string   `json:"last_seen,omitempty"`
	Files      []string `json:"files"`
	Sample     string   `json:"sample_message"`
}

// WriteSummaryJSON writes the summary table as JSON with run metadata.
// Each run gets a fresh run ID.
func WriteSummaryJSON(path string, summary aggregate.Summary) error {
	doc := summaryJSON{
		Version:     Version,
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		TotalEvents: summary.Total(),
		Errors:      make([]summaryRow, 0, len(summary)),
	}
	for _, row := range summary {
		doc.Errors = append(doc.Errors, summaryRow{
			Label:      row.Label,
			Count:      row.Count,
			Percentage: row.Percentage,
			Severity:   string(row.Severity),
			FirstSeen:  formatTime(row.FirstSeen),
			LastSeen:   formatTime(row.LastSeen),
			Files:      row.Files,
			Sample:     row.Sample,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Errorf("create JSON report: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Errorf("encode JSON report: %w", err)
	}
	return nil
}

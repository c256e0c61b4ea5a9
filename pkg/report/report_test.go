package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/psalmeida/logtriage/pkg/aggregate"
	"github.com/psalmeida/logtriage/pkg/rules"
	"github.com/psalmeida/logtriage/pkg/scanner"
)

func writeRaw(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func sampleTables() (aggregate.Detailed, aggregate.Summary) {
	events := []scanner.Event{
		{
			Label: "DiskFull", Severity: rules.SeverityHigh, SourceFile: "a.txt",
			LineNumber: 1, RawText: "2025-04-10 09:00:00 ERROR disk full",
			Timestamp: time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC),
		},
		{Label: "DiskFull", Severity: rules.SeverityHigh, SourceFile: "b.txt", LineNumber: 4, RawText: "ERROR disk full"},
		{Label: "Timeout", SourceFile: "a.txt", LineNumber: 2, RawText: "conn timeout"},
	}
	return aggregate.Aggregate(events)
}

func TestWriteDetailedCSV(t *testing.T) {
	detailed, _ := sampleTables()
	path := filepath.Join(t.TempDir(), "detailed.csv")
	if err := WriteDetailedCSV(path, detailed); err != nil {
		t.Fatalf("WriteDetailedCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d records", len(records))
	}
	wantHeader := []string{"error_name", "file", "line", "severity", "timestamp", "message"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
	if records[1][0] != "DiskFull" || records[1][2] != "1" || records[1][4] != "2025-04-10T09:00:00" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	if records[2][4] != "" {
		t.Errorf("expected empty timestamp column, got %q", records[2][4])
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	_, summary := sampleTables()
	path := filepath.Join(t.TempDir(), "summary.csv")
	if err := WriteSummaryCSV(path, summary); err != nil {
		t.Fatalf("WriteSummaryCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	// Ranked: DiskFull (2) before Timeout (1).
	if records[1][0] != "DiskFull" || records[1][1] != "2" || records[1][2] != "66.67" {
		t.Errorf("unexpected top row: %v", records[1])
	}
	if records[1][6] != "a.txt;b.txt" {
		t.Errorf("expected joined file list, got %q", records[1][6])
	}
	if records[2][0] != "Timeout" {
		t.Errorf("expected Timeout second, got %q", records[2][0])
	}
}

func TestRenderMarkdown(t *testing.T) {
	_, summary := sampleTables()
	md := RenderMarkdown(summary)

	for _, want := range []string{
		"# Detected Error Summary",
		"Error categories: **2**",
		"Total occurrences: **3**",
		"| DiskFull | 2 | 66.7 | High |",
		"| Timeout | 1 | 33.3 | - |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	md := RenderMarkdown(aggregate.Summary{})
	if !strings.Contains(md, "No mapped errors") {
		t.Errorf("expected empty-state note, got:\n%s", md)
	}
}

func TestWriteSummaryJSON(t *testing.T) {
	_, summary := sampleTables()
	path := filepath.Join(t.TempDir(), "summary.json")
	if err := WriteSummaryJSON(path, summary); err != nil {
		t.Fatalf("WriteSummaryJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var doc struct {
		Version     string `json:"version"`
		RunID       string `json:"run_id"`
		TotalEvents int    `json:"total_events"`
		Errors      []struct {
			Label string `json:"error_name"`
			Count int    `json:"count"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Version != Version || doc.RunID == "" {
		t.Errorf("missing metadata: %+v", doc)
	}
	if doc.TotalEvents != 3 || len(doc.Errors) != 2 || doc.Errors[0].Label != "DiskFull" {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestRenderTable(t *testing.T) {
	_, summary := sampleTables()
	var buf bytes.Buffer
	if err := RenderTable(&buf, summary); err != nil {
		t.Fatalf("RenderTable: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "DiskFull") || !strings.Contains(out, "Timeout") {
		t.Errorf("table missing rows:\n%s", out)
	}
}

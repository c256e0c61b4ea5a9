package report

import (
	"path/filepath"
	"testing"
)

func TestReadSummaryCSV_RoundTrip(t *testing.T) {
	_, summary := sampleTables()
	path := filepath.Join(t.TempDir(), "summary.csv")
	if err := WriteSummaryCSV(path, summary); err != nil {
		t.Fatalf("WriteSummaryCSV: %v", err)
	}

	got, err := ReadSummaryCSV(path)
	if err != nil {
		t.Fatalf("ReadSummaryCSV: %v", err)
	}
	if len(got) != len(summary) {
		t.Fatalf("expected %d rows, got %d", len(summary), len(got))
	}
	for i := range summary {
		if got[i].Label != summary[i].Label || got[i].Count != summary[i].Count {
			t.Errorf("row %d: got %+v, want %+v", i, got[i], summary[i])
		}
		if got[i].Severity != summary[i].Severity {
			t.Errorf("row %d: severity %q, want %q", i, got[i].Severity, summary[i].Severity)
		}
	}
	if !got[0].FirstSeen.Equal(summary[0].FirstSeen) {
		t.Errorf("FirstSeen = %v, want %v", got[0].FirstSeen, summary[0].FirstSeen)
	}
	if len(got[0].Files) != 2 {
		t.Errorf("expected file list restored, got %v", got[0].Files)
	}
}

func TestReadSummaryCSV_MissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := writeRaw(path, "foo,bar\n1,2\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadSummaryCSV(path); err == nil {
		t.Error("expected error for missing columns")
	}
}

func TestReadSummaryCSV_Missing(t *testing.T) {
	if _, err := ReadSummaryCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

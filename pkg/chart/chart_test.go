package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/psalmeida/logtriage/pkg/aggregate"
	"github.com/psalmeida/logtriage/pkg/scanner"
)

func summaryOf(t *testing.T, labels ...string) aggregate.Summary {
	t.Helper()
	var events []scanner.Event
	for i, l := range labels {
		events = append(events, scanner.Event{Label: l, SourceFile: "a.txt", LineNumber: i + 1, RawText: l})
	}
	_, s := aggregate.Aggregate(events)
	return s
}

func TestRenderAll(t *testing.T) {
	summary := summaryOf(t, "DiskFull", "DiskFull", "Timeout", "Proxy403")
	dir := t.TempDir()

	files, err := RenderAll(summary, dir, 10)
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	if len(files) != 4 {
		t.Fatalf("expected 4 chart files, got %d", len(files))
	}

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if !strings.Contains(string(data), "DiskFull") {
			t.Errorf("%s missing top label", filepath.Base(path))
		}
	}
}

func TestRenderAll_TopNTruncation(t *testing.T) {
	summary := summaryOf(t, "A", "A", "A", "B", "B", "C")
	dir := t.TempDir()

	files, err := RenderAll(summary, dir, 2)
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}

	var pie string
	for _, f := range files {
		if filepath.Base(f) == "pie_dist.html" {
			pie = f
		}
	}
	data, err := os.ReadFile(pie)
	if err != nil {
		t.Fatalf("read pie: %v", err)
	}
	// Beyond-top-N rows collapse into an Other bucket.
	if !strings.Contains(string(data), "Other") {
		t.Error("expected Other bucket in pie chart")
	}
	if strings.Contains(string(data), `"C"`) {
		t.Error("label beyond top-N should not appear as its own slice")
	}
}

func TestRenderAll_Empty(t *testing.T) {
	files, err := RenderAll(aggregate.Summary{}, t.TempDir(), 10)
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files for empty summary, got %v", files)
	}
}

package suggest

import (
	"testing"

	"github.com/google/uuid"
)

func TestDiscoverer_Candidates(t *testing.T) {
	d, err := NewDiscoverer()
	if err != nil {
		t.Fatalf("NewDiscoverer: %v", err)
	}

	lines := []string{
		"Connection timeout to host alpha after 5000 ms",
		"Connection timeout to host beta after 3000 ms",
		"Connection timeout to host gamma after 1200 ms",
		"One-off message that never repeats",
	}
	if err := d.Feed(lines); err != nil {
		t.Fatalf("Feed: %v", err)
	}

	candidates, err := d.Candidates(2)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 recurring template, got %d: %+v", len(candidates), candidates)
	}
	if candidates[0].Count != 3 {
		t.Errorf("expected cluster of 3, got %d", candidates[0].Count)
	}
	if candidates[0].ID == uuid.Nil {
		t.Error("expected stable non-nil candidate ID")
	}
}

func TestDiscoverer_MinCountFloor(t *testing.T) {
	d, err := NewDiscoverer()
	if err != nil {
		t.Fatalf("NewDiscoverer: %v", err)
	}
	if err := d.Feed([]string{"a single unique line"}); err != nil {
		t.Fatalf("Feed: %v", err)
	}

	// minCount below 2 is raised to 2: a singleton cluster is the literal
	// line, not a pattern.
	candidates, err := d.Candidates(0)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("expected no candidates from a single line, got %+v", candidates)
	}
}

func TestDiscoverer_Empty(t *testing.T) {
	d, err := NewDiscoverer()
	if err != nil {
		t.Fatalf("NewDiscoverer: %v", err)
	}
	candidates, err := d.Candidates(2)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("expected no candidates before feeding, got %d", len(candidates))
	}
}

func TestDiscoverer_StableIDs(t *testing.T) {
	d, err := NewDiscoverer()
	if err != nil {
		t.Fatalf("NewDiscoverer: %v", err)
	}
	lines := []string{
		"worker 1 exited with code 137",
		"worker 2 exited with code 137",
	}
	if err := d.Feed(lines); err != nil {
		t.Fatalf("Feed: %v", err)
	}

	first, err := d.Candidates(2)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	again, err := d.Candidates(2)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(first) != 1 || len(again) != 1 || first[0].ID != again[0].ID {
		t.Errorf("expected identical candidate IDs across calls: %+v vs %+v", first, again)
	}
}

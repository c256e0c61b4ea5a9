package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeUserRules(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "rules:\n  - label: UserForbidden\n    contains: forbidden\n    severity: Low\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	return path
}

func TestBuildRuleSet_BuiltinOnly(t *testing.T) {
	set, err := buildRuleSet("", false)
	if err != nil {
		t.Fatalf("buildRuleSet: %v", err)
	}
	if set.Len() == 0 {
		t.Fatal("expected builtin rules")
	}
}

func TestBuildRuleSet_UserRuleOrder(t *testing.T) {
	path := writeUserRules(t)

	// Builtins first: the builtin Proxy403 rule also matches "forbidden".
	set, err := buildRuleSet(path, false)
	if err != nil {
		t.Fatalf("buildRuleSet: %v", err)
	}
	m, ok := set.Classify("request was forbidden by proxy")
	if !ok || m.Label != "Proxy403" {
		t.Errorf("expected builtin rule to win, got %+v (ok=%v)", m, ok)
	}

	// User rules first: the user rule shadows the builtin.
	set, err = buildRuleSet(path, true)
	if err != nil {
		t.Fatalf("buildRuleSet: %v", err)
	}
	m, ok = set.Classify("request was forbidden by proxy")
	if !ok || m.Label != "UserForbidden" {
		t.Errorf("expected user rule to win with rules-first, got %+v (ok=%v)", m, ok)
	}
}

func TestBuildRuleSet_BadFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  - label: X\n    regex: \"unclosed(\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := buildRuleSet(path, false); err == nil {
		t.Error("expected fatal error for invalid rule file")
	}
}

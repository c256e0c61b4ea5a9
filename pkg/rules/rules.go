// Package rules defines the error-pattern rule set used to classify log lines.
//
// A rule set is ordered, declarative data: each rule pairs a label with a
// matcher variant (contains, prefix, or regex) and an optional severity.
// Classification is first-match-wins in declaration order and is
// case-sensitive; log error tokens are fixed-case keywords, so a rule for
// "ERROR" deliberately does not match "error".
package rules

import (
	"github.com/go-errors/errors"
)

// Rule associates a unique label with a matcher and an optional severity.
// Rules are immutable after the set is constructed.
type Rule struct {
	Label    string
	Matcher  Matcher
	Severity Severity
}

// Match is the classification result for a single line.
type Match struct {
	Label    string
	Severity Severity
}

// Set is an ordered, validated collection of rules.
type Set struct {
	rules []Rule
}

// NewSet validates the given rules and returns a Set preserving their order.
// Empty or duplicate labels and nil matchers are construction errors; a run
// cannot proceed with an invalid rule set.
func NewSet(rs []Rule) (*Set, error) {
	seen := make(map[string]bool, len(rs))
	for i, r := range rs {
		if r.Label == "" {
			return nil, errors.Errorf("rule %d: empty label", i)
		}
		if seen[r.Label] {
			return nil, errors.Errorf("rule %d: duplicate label %q", i, r.Label)
		}
		seen[r.Label] = true
		if r.Matcher == nil {
			return nil, errors.Errorf("rule %q: no matcher", r.Label)
		}
	}
	set := &Set{rules: make([]Rule, len(rs))}
	copy(set.rules, rs)
	return set, nil
}

// Classify returns the first rule matching the line, in declaration order.
// A line matching several rules yields exactly one match. Pure function of
// (set, line).
func (s *Set) Classify(line string) (Match, bool) {
	for _, r := range s.rules {
		if r.Matcher.Match(line) {
			return Match{Label: r.Label, Severity: r.Severity}, true
		}
	}
	return Match{}, false
}

// Len returns the number of rules in the set.
func (s *Set) Len() int {
	return len(s.rules)
}

// Rules returns a copy of the rules in declaration order.
func (s *Set) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

package rules

import (
	"os"

	"github.com/go-errors/errors"
	"gopkg.in/yaml.v3"
)

// ruleFile is the YAML shape of a user-supplied rule file:
//
//	rules:
//	  - label: DiskFull
//	    contains: "disk full"
//	    severity: High
//	  - label: OOMKill
//	    regex: "Out of memory|oom-killer"
type ruleFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	Label    string `yaml:"label"`
	Contains string `yaml:"contains"`
	Prefix   string `yaml:"prefix"`
	Regex    string `yaml:"regex"`
	Severity string `yaml:"severity"`
}

// LoadFile reads user-supplied rules from a YAML file. Any malformed entry
// (missing label, no matcher, more than one matcher, bad regex, unknown
// severity) is a fatal error; the run cannot proceed with an invalid rule
// set.
func LoadFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("read rule file: %w", err)
	}

	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, errors.Errorf("parse rule file %s: %w", path, err)
	}
	if len(rf.Rules) == 0 {
		return nil, errors.Errorf("rule file %s: no rules", path)
	}

	out := make([]Rule, 0, len(rf.Rules))
	for i, spec := range rf.Rules {
		r, err := spec.build()
		if err != nil {
			return nil, errors.Errorf("rule file %s, rule %d: %w", path, i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (s ruleSpec) build() (Rule, error) {
	if s.Label == "" {
		return Rule{}, errors.New("missing label")
	}

	var matchers []Matcher
	if s.Contains != "" {
		matchers = append(matchers, Contains(s.Contains))
	}
	if s.Prefix != "" {
		matchers = append(matchers, Prefix(s.Prefix))
	}
	if s.Regex != "" {
		re, err := NewRegex(s.Regex)
		if err != nil {
			return Rule{}, err
		}
		matchers = append(matchers, re)
	}
	if len(matchers) != 1 {
		return Rule{}, errors.Errorf("rule %q: want exactly one of contains, prefix or regex, got %d", s.Label, len(matchers))
	}

	sev, err := ParseSeverity(s.Severity)
	if err != nil {
		return Rule{}, errors.Errorf("rule %q: %w", s.Label, err)
	}

	return Rule{Label: s.Label, Matcher: matchers[0], Severity: sev}, nil
}

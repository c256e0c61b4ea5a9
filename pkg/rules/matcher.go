package rules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
)

// Matcher decides whether a log line satisfies a rule. Matching is anchored
// to substrings: a matcher succeeds if its pattern occurs anywhere in the
// line, mirroring free-form log formats.
type Matcher interface {
	Match(line string) bool
	// Spec returns a short human-readable description of the matcher,
	// e.g. `contains("disk full")`.
	Spec() string
}

// Contains matches lines containing a literal substring.
type Contains string

func (c Contains) Match(line string) bool {
	return strings.Contains(line, string(c))
}

func (c Contains) Spec() string {
	return "contains(" + strconv.Quote(string(c)) + ")"
}

// Prefix matches lines starting with a literal prefix.
type Prefix string

func (p Prefix) Match(line string) bool {
	return strings.HasPrefix(line, string(p))
}

func (p Prefix) Spec() string {
	return "prefix(" + strconv.Quote(string(p)) + ")"
}

// Regex matches lines against a compiled regular expression.
type Regex struct {
	re *regexp.Regexp
}

// NewRegex compiles expr into a Regex matcher. Invalid syntax is a
// construction-time error.
func NewRegex(expr string) (Regex, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Regex{}, errors.Errorf("compile pattern %q: %w", expr, err)
	}
	return Regex{re: re}, nil
}

// MustRegex is like NewRegex but panics on invalid syntax. For use with
// compile-time constant patterns only.
func MustRegex(expr string) Regex {
	return Regex{re: regexp.MustCompile(expr)}
}

func (r Regex) Match(line string) bool {
	return r.re.MatchString(line)
}

func (r Regex) Spec() string {
	return "regex(" + strconv.Quote(r.re.String()) + ")"
}

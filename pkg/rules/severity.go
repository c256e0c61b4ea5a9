package rules

import "github.com/go-errors/errors"

// Severity classifies the operational impact of a rule. It is a property
// of the rule, carried unchanged onto every event and summary row the rule
// produces.
type Severity string

const (
	// SeverityUnset means the rule carries no severity.
	SeverityUnset  Severity = ""
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// ParseSeverity converts a rule-file value into a Severity. The empty
// string is valid and means unset.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityUnset, SeverityLow, SeverityMedium, SeverityHigh:
		return Severity(s), nil
	}
	return SeverityUnset, errors.Errorf("unknown severity %q (want Low, Medium or High)", s)
}

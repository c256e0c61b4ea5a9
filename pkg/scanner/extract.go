package scanner

import (
	"regexp"
	"time"
)

// Timestamp token shapes seen in the supported log formats:
// a bracketed day-first date like "[10/04/2025 | ...", and a plain
// ISO-ish "2025-04-10 12:34:56" (space or T separated).
var (
	reBracketDate = regexp.MustCompile(`\[(\d{2}/\d{2}/\d{4}).*?\|`)
	reISODateTime = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})[ T](\d{2}:\d{2}:\d{2})`)

	reUUID      = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	reSessionID = regexp.MustCompile(`(?i)session id[:\s]\s*(\d+)`)
)

// ExtractTimestamp finds the first recognizable date/time token in the line
// and parses it. Absence of a parseable timestamp is not an error; the
// second return is false.
func ExtractTimestamp(line string) (time.Time, bool) {
	if m := reBracketDate.FindStringSubmatch(line); m != nil {
		ts, err := time.Parse("02/01/2006", m[1])
		if err == nil {
			return ts, true
		}
		return time.Time{}, false
	}
	if m := reISODateTime.FindStringSubmatch(line); m != nil {
		ts, err := time.Parse("2006-01-02T15:04:05", m[1]+"T"+m[2])
		if err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// ExtractUUID returns the first session UUID in the line, or "".
func ExtractUUID(line string) string {
	return reUUID.FindString(line)
}

// ExtractSessionID returns the first numeric session id in the line, or "".
func ExtractSessionID(line string) string {
	if m := reSessionID.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

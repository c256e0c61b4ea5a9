// Package aggregate turns the scanner's match events into the two report
// tables: the detailed occurrence table and the ranked per-label summary.
package aggregate

import (
	"sort"
	"time"

	"github.com/psalmeida/logtriage/pkg/rules"
	"github.com/psalmeida/logtriage/pkg/scanner"
)

// Detailed is the full, unaggregated sequence of match events in scan
// order. No deduplication.
type Detailed []scanner.Event

// SummaryRow aggregates all events sharing one label.
type SummaryRow struct {
	Label      string
	Count      int
	Percentage float64
	Severity   rules.Severity
	// FirstSeen/LastSeen span the timestamps observed for the label; zero
	// when no event carried a parseable timestamp.
	FirstSeen time.Time
	LastSeen  time.Time
	// Files lists the distinct source files for the label, sorted.
	Files []string
	// Sample is the raw text of the first occurrence, for human inspection.
	Sample string
}

// Summary is the ranked per-label table: count descending, label ascending
// on ties. The ordering is deterministic across runs and platforms.
type Summary []SummaryRow

// Aggregate builds both tables from an event sequence. The detailed table
// preserves input order; the summary groups by label, counts, computes
// percentages over the event total, and sorts. Zero events produce an
// empty summary with no division-by-zero state.
func Aggregate(events []scanner.Event) (Detailed, Summary) {
	detailed := Detailed(events)
	if len(events) == 0 {
		return detailed, Summary{}
	}

	byLabel := make(map[string]*SummaryRow)
	fileSets := make(map[string]map[string]bool)
	var order []string

	for _, ev := range events {
		row, ok := byLabel[ev.Label]
		if !ok {
			row = &SummaryRow{
				Label:    ev.Label,
				Severity: ev.Severity,
				Sample:   ev.RawText,
			}
			byLabel[ev.Label] = row
			fileSets[ev.Label] = make(map[string]bool)
			order = append(order, ev.Label)
		}
		row.Count++
		fileSets[ev.Label][ev.SourceFile] = true
		if !ev.Timestamp.IsZero() {
			if row.FirstSeen.IsZero() || ev.Timestamp.Before(row.FirstSeen) {
				row.FirstSeen = ev.Timestamp
			}
			if row.LastSeen.IsZero() || ev.Timestamp.After(row.LastSeen) {
				row.LastSeen = ev.Timestamp
			}
		}
	}

	total := len(events)
	summary := make(Summary, 0, len(order))
	for _, label := range order {
		row := byLabel[label]
		row.Percentage = 100 * float64(row.Count) / float64(total)
		files := make([]string, 0, len(fileSets[label]))
		for f := range fileSets[label] {
			files = append(files, f)
		}
		sort.Strings(files)
		row.Files = files
		summary = append(summary, *row)
	}

	sort.SliceStable(summary, func(i, j int) bool {
		if summary[i].Count != summary[j].Count {
			return summary[i].Count > summary[j].Count
		}
		return summary[i].Label < summary[j].Label
	})
	return detailed, summary
}

// Total returns the number of events behind the summary. It always equals
// the detailed table's length for tables produced by Aggregate.
func (s Summary) Total() int {
	n := 0
	for _, row := range s {
		n += row.Count
	}
	return n
}

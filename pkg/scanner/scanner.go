// Package scanner reads log files and classifies each line against a rule
// set, producing match events for the aggregator. Files are scanned
// independently; unreadable or undecodable files are skipped with a
// warning, never aborting the run.
package scanner

import (
	"bufio"
	"context"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-errors/errors"
	"golang.org/x/sync/errgroup"

	"github.com/psalmeida/logtriage/pkg/rules"
)

// Event is one classified occurrence of an error pattern on one log line.
type Event struct {
	Label      string
	Severity   rules.Severity
	SourceFile string
	LineNumber int
	RawText    string
	// Timestamp is the parsed time token from the line, zero when the line
	// carries no recognizable timestamp.
	Timestamp   time.Time
	SessionUUID string
	SessionID   string
}

// SkippedFile records a file that could not be scanned.
type SkippedFile struct {
	Path string
	Err  error
}

// ScanFile reads one log file and returns a match event for every line the
// rule set classifies, in file order with 1-indexed line numbers. Lines
// matching no rule produce nothing. An empty file yields zero events
// without error; non-text content is a per-file error.
func ScanFile(path string, set *rules.Set) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var events []Event
	sc := bufio.NewScanner(f)
	// Increase buffer for long lines
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		raw := sc.Bytes()
		if !utf8.Valid(raw) {
			return nil, errors.Errorf("line %d: not valid UTF-8 text", lineNum)
		}
		line := string(raw)
		m, ok := set.Classify(line)
		if !ok {
			continue
		}
		ev := Event{
			Label:      m.Label,
			Severity:   m.Severity,
			SourceFile: path,
			LineNumber: lineNum,
			RawText:    strings.TrimSpace(line),
		}
		if ts, ok := ExtractTimestamp(line); ok {
			ev.Timestamp = ts
		}
		ev.SessionUUID = ExtractUUID(line)
		ev.SessionID = ExtractSessionID(line)
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Errorf("read log file: %w", err)
	}
	return events, nil
}

// Scan classifies a set of files, up to concurrency at a time. Each file is
// an independent task owning its own event slice; the merge step restores
// input-file order, so the output is deterministic regardless of task
// completion order. Failed files become skip records rather than errors.
// progress, if non-nil, is called once per finished file.
func Scan(ctx context.Context, files []string, set *rules.Set, concurrency int, progress func()) ([]Event, []SkippedFile, error) {
	if concurrency <= 0 {
		concurrency = 1
	}

	perFile := make([][]Event, len(files))
	failures := make([]error, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			evs, err := ScanFile(path, set)
			if err != nil {
				failures[i] = err
			} else {
				perFile[i] = evs
			}
			if progress != nil {
				progress()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var events []Event
	var skipped []SkippedFile
	for i, path := range files {
		if failures[i] != nil {
			skipped = append(skipped, SkippedFile{Path: path, Err: failures[i]})
			continue
		}
		events = append(events, perFile[i]...)
	}
	return events, skipped, nil
}

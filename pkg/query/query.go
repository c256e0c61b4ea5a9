// Package query exposes the emitted report CSVs to ad-hoc SQL through an
// in-memory DuckDB. Nothing is persisted; the flat report files stay the
// only artifacts of a run.
package query

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/go-errors/errors"
)

// ReportDB binds the detailed and summary report CSVs as the `detailed`
// and `summary` views of an in-memory database.
type ReportDB struct {
	db *sql.DB
}

// Open creates the in-memory database and the two views. The CSV files
// must exist; a missing report is surfaced on the first query.
func Open(ctx context.Context, detailedCSV, summaryCSV string) (*ReportDB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Errorf("open duckdb: %w", err)
	}

	views := []struct{ name, path string }{
		{"detailed", detailedCSV},
		{"summary", summaryCSV},
	}
	for _, v := range views {
		stmt := fmt.Sprintf(
			"CREATE VIEW %s AS SELECT * FROM read_csv_auto('%s', header=true)",
			v.name, escape(v.path),
		)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, errors.Errorf("bind %s view: %w", v.name, err)
		}
	}
	return &ReportDB{db: db}, nil
}

func escape(path string) string {
	return strings.ReplaceAll(path, "'", "''")
}

// Run executes a read-only query and returns column names plus stringified
// rows. NULLs come back as empty strings.
func (r *ReportDB) Run(ctx context.Context, query string) ([]string, [][]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, errors.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, errors.Errorf("columns: %w", err)
	}

	var out [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		scan := make([]any, len(cols))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, nil, errors.Errorf("scan row: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, errors.Errorf("iterate rows: %w", err)
	}
	return cols, out, nil
}

// TopErrors is the canned default query: the ranked summary limited to n.
func (r *ReportDB) TopErrors(ctx context.Context, n int) ([]string, [][]string, error) {
	return r.Run(ctx, fmt.Sprintf(
		"SELECT error_name, count, percentage, severity FROM summary ORDER BY count DESC, error_name ASC LIMIT %d", n))
}

// ByLabel returns the detailed occurrences for one error label.
func (r *ReportDB) ByLabel(ctx context.Context, label string) ([]string, [][]string, error) {
	return r.Run(ctx, fmt.Sprintf(
		"SELECT file, line, message FROM detailed WHERE error_name = '%s' ORDER BY file, line", escape(label)))
}

// Close releases the in-memory database.
func (r *ReportDB) Close() error {
	return r.db.Close()
}

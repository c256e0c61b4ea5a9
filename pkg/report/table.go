package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-errors/errors"
	"github.com/olekukonko/tablewriter"

	"github.com/psalmeida/logtriage/pkg/aggregate"
)

// RenderTable prints the summary table to w for interactive use.
func RenderTable(w io.Writer, summary aggregate.Summary) error {
	table := tablewriter.NewWriter(w)
	table.Header("ERROR", "COUNT", "%", "SEVERITY")
	for _, row := range summary {
		if err := table.Append(
			row.Label,
			strconv.Itoa(row.Count),
			fmt.Sprintf("%.1f", row.Percentage),
			orDash(string(row.Severity)),
		); err != nil {
			return errors.Errorf("append table row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return errors.Errorf("render table: %w", err)
	}
	return nil
}

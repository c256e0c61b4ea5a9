package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/psalmeida/logtriage/pkg/query"
)

func queryCmd() *cobra.Command {
	var reportDir string
	var basename string

	cmd := &cobra.Command{
		Use:   "query [sql]",
		Short: "Run SQL over the emitted report CSVs",
		Long: `Bind the detailed and summary report CSVs as the 'detailed' and
'summary' views of an in-memory DuckDB and run SQL against them.
Without an argument the ranked top errors are printed.

Examples:
  logtriage query -d ./reports
  logtriage query -d ./reports "SELECT file, count(*) FROM detailed GROUP BY file"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, reportDir, basename, args)
		},
	}

	cmd.Flags().StringVarP(&reportDir, "dir", "d", "", "directory holding the scan reports")
	cmd.Flags().StringVarP(&basename, "basename", "b", "logs", "base prefix used by the scan")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

func runQuery(cmd *cobra.Command, reportDir, basename string, args []string) error {
	ctx := cmd.Context()

	detCSV := filepath.Join(reportDir, basename+"_detailed.csv")
	sumCSV := filepath.Join(reportDir, basename+"_summary.csv")

	db, err := query.Open(ctx, detCSV, sumCSV)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	var cols []string
	var rows [][]string
	if len(args) == 1 {
		cols, rows, err = db.Run(ctx, args[0])
	} else {
		cols, rows, err = db.TopErrors(ctx, 10)
	}
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	table.Header(header...)
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d rows\n", len(rows))
	return nil
}

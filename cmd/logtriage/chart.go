package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/psalmeida/logtriage/pkg/chart"
	"github.com/psalmeida/logtriage/pkg/report"
)

func chartCmd() *cobra.Command {
	var summaryCSV string
	var outDir string
	var topN int

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render charts from a summary CSV",
		Long: `Read a summary CSV produced by 'logtriage scan' and render bar,
horizontal-bar, pie and Pareto charts as standalone HTML files.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			summary, err := report.ReadSummaryCSV(summaryCSV)
			if err != nil {
				return err
			}
			files, err := chart.RenderAll(summary, outDir, topN)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(os.Stderr, "Empty summary, nothing to chart.")
				return nil
			}
			for _, f := range files {
				fmt.Fprintf(os.Stderr, "Chart: %s\n", f)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&summaryCSV, "summary", "s", "", "summary CSV from a previous scan")
	cmd.Flags().StringVarP(&outDir, "output", "o", "charts", "output directory for chart files")
	cmd.Flags().IntVar(&topN, "top", chart.DefaultTopN, "number of ranked labels to display")
	_ = cmd.MarkFlagRequired("summary")
	return cmd
}

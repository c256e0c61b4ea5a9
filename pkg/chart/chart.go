// Package chart renders visual projections of the summary table: bar,
// horizontal bar, pie and Pareto views of the same ranked list. Charts are
// purely presentational; top-N truncation is a rendering parameter, not a
// property of the data.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-errors/errors"

	"github.com/psalmeida/logtriage/pkg/aggregate"
)

// DefaultTopN bounds how many ranked labels a chart displays.
const DefaultTopN = 10

// RenderAll writes all chart files into outDir and returns their paths.
// An empty summary produces no files.
func RenderAll(summary aggregate.Summary, outDir string, topN int) ([]string, error) {
	if len(summary) == 0 {
		return nil, nil
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.Errorf("create chart directory: %w", err)
	}

	renders := []struct {
		name   string
		render func(aggregate.Summary, int, string) error
	}{
		{"bar_top.html", renderBar},
		{"barh_top.html", renderHorizontalBar},
		{"pie_dist.html", renderPie},
		{"pareto.html", renderPareto},
	}

	var written []string
	for _, r := range renders {
		path := filepath.Join(outDir, r.name)
		if err := r.render(summary, topN, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func top(summary aggregate.Summary, n int) aggregate.Summary {
	if len(summary) <= n {
		return summary
	}
	return summary[:n]
}

func renderTo(path string, render func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Errorf("create chart file: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err := render(f); err != nil {
		return errors.Errorf("render chart: %w", err)
	}
	return nil
}

func renderBar(summary aggregate.Summary, topN int, path string) error {
	rows := top(summary, topN)
	labels := make([]string, len(rows))
	data := make([]opts.BarData, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
		data[i] = opts.BarData{Value: row.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: fmt.Sprintf("Top %d errors by count", len(rows)),
	}))
	bar.SetXAxis(labels).AddSeries("occurrences", data)
	return renderTo(path, bar.Render)
}

func renderHorizontalBar(summary aggregate.Summary, topN int, path string) error {
	rows := top(summary, topN)
	// Reversed so the largest bar ends up on top after the axis flip.
	labels := make([]string, len(rows))
	data := make([]opts.BarData, len(rows))
	for i := range rows {
		row := rows[len(rows)-1-i]
		labels[i] = row.Label
		data[i] = opts.BarData{Value: row.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: fmt.Sprintf("Top %d errors (horizontal)", len(rows)),
	}))
	bar.SetXAxis(labels).AddSeries("occurrences", data)
	bar.XYReversal()
	return renderTo(path, bar.Render)
}

func renderPie(summary aggregate.Summary, topN int, path string) error {
	rows := top(summary, topN)
	data := make([]opts.PieData, 0, len(rows)+1)
	for _, row := range rows {
		data = append(data, opts.PieData{Name: row.Label, Value: row.Count})
	}
	// Everything beyond top-N collapses into a single bucket.
	other := 0
	for _, row := range summary[len(rows):] {
		other += row.Count
	}
	if other > 0 {
		data = append(data, opts.PieData{Name: "Other", Value: other})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: "Error distribution",
	}))
	pie.AddSeries("errors", data)
	return renderTo(path, pie.Render)
}

func renderPareto(summary aggregate.Summary, topN int, path string) error {
	rows := top(summary, topN)
	total := summary.Total()

	labels := make([]string, len(rows))
	bars := make([]opts.BarData, len(rows))
	cumulative := make([]opts.LineData, len(rows))
	running := 0
	for i, row := range rows {
		labels[i] = row.Label
		bars[i] = opts.BarData{Value: row.Count}
		running += row.Count
		cumulative[i] = opts.LineData{Value: 100 * float64(running) / float64(total)}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: "Pareto of errors",
	}))
	bar.ExtendYAxis(opts.YAxis{
		Name: "cumulative %",
		Max:  100,
	})
	bar.SetXAxis(labels).AddSeries("occurrences", bars)

	line := charts.NewLine()
	line.SetXAxis(labels).AddSeries("cumulative %", cumulative,
		charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}))
	bar.Overlap(line)
	return renderTo(path, bar.Render)
}

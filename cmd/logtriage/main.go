package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/psalmeida/logtriage/pkg/tracing"
)

func main() {
	// Load .env file if present (does not override existing env vars)
	_ = godotenv.Load()

	shutdown := tracing.InitOTLP(context.Background())
	flush := tracing.InitLangfuse()

	root := &cobra.Command{
		Use:   "logtriage",
		Short: "Log error categorization and reporting",
		Long:  "logtriage scans .txt log files, classifies each line against error-pattern rules,\nand renders CSV, Markdown, JSON, chart and AI-analysis reports.",
	}

	root.AddCommand(scanCmd())
	root.AddCommand(chartCmd())
	root.AddCommand(summarizeCmd())
	root.AddCommand(queryCmd())
	root.AddCommand(suggestCmd())

	err := root.Execute()
	flush()
	shutdown()

	if err != nil {
		os.Exit(1)
	}
}

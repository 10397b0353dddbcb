package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"workforce/internal/analytics"
	"workforce/internal/app/server"
	"workforce/internal/export"
	"workforce/internal/platform/config"
	"workforce/internal/platform/db"
	"workforce/internal/store"
)

var (
	databaseURL string
	sqlitePath  string
	format      string
	outputFile  string
)

var rootCmd = &cobra.Command{
	Use:   "workforce",
	Short: "Workforce analytics over employee, salary and review tables",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the workforce report over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		server.Run(loadConfig())
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute the workforce report once and write it out",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection string (default: DATABASE_URL)")
	reportCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "SQLite database file path (default: SQLITE_PATH)")
	reportCmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, csv or pdf")
	reportCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output file (default: stdout)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
}

func loadConfig() config.Config {
	cfg := config.Load()
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if sqlitePath != "" {
		cfg.SQLitePath = sqlitePath
	}
	return cfg
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SnapshotTimeout)
	defer cancel()

	var source store.Source
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("db connect failed: %w", err)
		}
		defer pool.Close()
		source = store.NewPostgres(pool)
	} else {
		sqlite, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer sqlite.Close()
		source = sqlite
	}

	snap, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("snapshot load failed: %w", err)
	}
	rows := analytics.Run(snap)

	var out io.Writer = os.Stdout
	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	switch format {
	case "table":
		export.WriteTable(out, rows)
	case "csv":
		return export.WriteCSV(out, rows)
	case "pdf":
		return export.WritePDF(out, rows)
	default:
		return fmt.Errorf("unknown format %q (want table, csv or pdf)", format)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ZomoXYZ/dreambox-snake/internal/registry"
	"github.com/ZomoXYZ/dreambox-snake/internal/storage"
)

var (
	flagExportOut   string
	flagExportGame  string
	flagExportLimit int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to a parquet file",
	Long: `Write recorded runs (seed, board, outcome, size, steps) to a
zstd-compressed parquet file, newest first.

Examples:
  snake export --out runs.parquet
  snake export --out legacy.parquet --game snake_legacy
  snake export --out last100.parquet --limit 100`,
	Run: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "runs.parquet", "Output file")
	exportCmd.Flags().StringVar(&flagExportGame, "game", "", "Only export runs of this game (default: all)")
	exportCmd.Flags().IntVar(&flagExportLimit, "limit", 0, "Export at most this many runs (0 = all)")
}

func runExport(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "export",
	})

	if flagExportGame != "" && !registry.Exists(flagExportGame) {
		logger.Fatal("unknown game", "game", flagExportGame)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "error", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagExportGame, flagExportLimit)
	if err != nil {
		logger.Error("cannot load runs", "error", err)
		return
	}
	if len(runs) == 0 {
		logger.Warn("no runs recorded, writing an empty file")
	}

	if err := storage.ExportRunsParquet(flagExportOut, runs); err != nil {
		logger.Error("export failed", "error", err)
		return
	}
	logger.Info("export complete", "runs", len(runs), "out", flagExportOut)
}

package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// RunSchema is the value of the "schema" key in exported file metadata.
const RunSchema = "snake_run_v1"

// RunRow is the parquet layout of an exported run.
type RunRow struct {
	ID        int64  `parquet:"id"`
	GameID    string `parquet:"game_id,dict"`
	Seed0     int32  `parquet:"seed0"`
	Seed1     int32  `parquet:"seed1"`
	Width     int32  `parquet:"width"`
	Height    int32  `parquet:"height"`
	Outcome   string `parquet:"outcome,dict"`
	Reason    string `parquet:"reason,dict"`
	Size      int32  `parquet:"size"`
	Steps     int64  `parquet:"steps"`
	CreatedAt int64  `parquet:"created_at_unix"`
}

func toRow(r RunRecord) RunRow {
	var created int64
	if !r.CreatedAt.IsZero() {
		created = r.CreatedAt.Unix()
	}
	return RunRow{
		ID:        r.ID,
		GameID:    r.GameID,
		Seed0:     int32(r.Seed[0]),
		Seed1:     int32(r.Seed[1]),
		Width:     int32(r.Width),
		Height:    int32(r.Height),
		Outcome:   r.Outcome,
		Reason:    r.Reason,
		Size:      int32(r.Size),
		Steps:     int64(r.Steps),
		CreatedAt: created,
	}
}

// ExportRunsParquet writes runs to a zstd-compressed parquet file. The file is
// written next to outPath and renamed into place.
func ExportRunsParquet(outPath string, runs []RunRecord) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("storage: create output dir: %w", err)
	}

	rows := make([]RunRow, len(runs))
	for i, r := range runs {
		rows[i] = toRow(r)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", RunSchema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage: write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage: rename parquet: %w", err)
	}
	return nil
}

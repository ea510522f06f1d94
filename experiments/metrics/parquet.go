package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// GameRow is the columnar form of a GameRecord.
type GameRow struct {
	ID             int32  `parquet:"id"`
	Agent1         int32  `parquet:"agent1"`
	Agent2         int32  `parquet:"agent2"`
	StartingPlayer string `parquet:"starting_player,dict"`
	Winner         string `parquet:"winner,dict"`
	StartTimeNs    int64  `parquet:"start_time_ns"`
	DurationNs     int64  `parquet:"duration_ns"`
	TotalMoves     int32  `parquet:"total_moves"`
}

// MoveRow is the columnar form of a MoveRecord.
type MoveRow struct {
	Game       int32  `parquet:"game"`
	Step       int32  `parquet:"step"`
	Player     string `parquet:"player,dict"`
	Roll       int32  `parquet:"roll"`
	Passed     bool   `parquet:"passed"`
	Depth      int32  `parquet:"depth"`
	Goroutines int32  `parquet:"goroutines"`
	DurationNs int64  `parquet:"duration_ns"`
	Candidates int32  `parquet:"candidates"`
	Nodes      int64  `parquet:"nodes"`
	Chances    int64  `parquet:"chances"`
	Leaves     int64  `parquet:"leaves"`
	Terminals  int64  `parquet:"terminals"`
}

func (w *Writer) WriteGameParquet(records []GameRecord) error {
	rows := make([]GameRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, GameRow{
			ID:             int32(r.ID),
			Agent1:         int32(r.Agent1),
			Agent2:         int32(r.Agent2),
			StartingPlayer: r.StartingPlayer,
			Winner:         r.Winner,
			StartTimeNs:    r.StartTime.UnixNano(),
			DurationNs:     r.Duration.Nanoseconds(),
			TotalMoves:     int32(r.TotalMoves),
		})
	}
	return writeParquet(filepath.Join(w.baseDir, "game_records.parquet"), rows, "game_record_v1")
}

func (w *Writer) WriteMoveParquet(records []MoveRecord) error {
	rows := make([]MoveRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, MoveRow{
			Game:       int32(r.Game),
			Step:       int32(r.Step),
			Player:     r.Player,
			Roll:       int32(r.Roll),
			Passed:     r.Passed,
			Depth:      int32(r.Depth),
			Goroutines: int32(r.Goroutines),
			DurationNs: r.Duration.Nanoseconds(),
			Candidates: int32(r.Candidates),
			Nodes:      int64(r.Nodes),
			Chances:    int64(r.Chances),
			Leaves:     int64(r.Leaves),
			Terminals:  int64(r.Terminals),
		})
	}
	return writeParquet(filepath.Join(w.baseDir, "move_records.parquet"), rows, "move_record_v1")
}

// writeParquet writes to a temp file and renames it into place.
func writeParquet[T any](outPath string, rows []T, schema string) error {
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schema),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

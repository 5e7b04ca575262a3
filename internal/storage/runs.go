package storage

import (
	"fmt"
	"time"

	"github.com/ZomoXYZ/dreambox-snake/internal/core"
)

// RunRecord is one finished round: the seed it started from, how it ended and
// how far the snake got. Replaying the seed with the same inputs reproduces it.
type RunRecord struct {
	ID        int64
	GameID    string
	Seed      [2]byte
	Width     int
	Height    int
	Outcome   string
	Reason    string
	Size      int
	Steps     uint64
	CreatedAt time.Time
}

// RunFromSummary converts a game's round summary into a record.
func RunFromSummary(s core.RunSummary) RunRecord {
	return RunRecord{
		GameID:  s.GameID,
		Seed:    s.Seed,
		Width:   s.Width,
		Height:  s.Height,
		Outcome: s.Outcome,
		Reason:  s.Reason,
		Size:    s.Size,
		Steps:   s.Steps,
	}
}

// SaveRun records a finished round. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (game_id, seed0, seed1, width, height, outcome, reason, size, steps)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Seed[0], r.Seed[1], r.Width, r.Height, r.Outcome, r.Reason, r.Size, int64(r.Steps),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns returns the latest runs, newest first. An empty gameID matches
// every game; a non-positive limit returns all runs.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	query := `SELECT id, game_id, seed0, seed1, width, height, outcome, reason, size, steps, created_at
		 FROM runs
		 WHERE (? = '' OR game_id = ?)
		 ORDER BY id DESC`
	args := []any{gameID, gameID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			r            RunRecord
			seed0, seed1 int
			steps        int64
			createdAt    any
		)
		err := rows.Scan(&r.ID, &r.GameID, &seed0, &seed1, &r.Width, &r.Height,
			&r.Outcome, &r.Reason, &r.Size, &steps, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.Seed = [2]byte{byte(seed0), byte(seed1)}
		r.Steps = uint64(steps)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

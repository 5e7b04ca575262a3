package storage

import (
	"testing"

	"github.com/ZomoXYZ/dreambox-snake/internal/core"
)

func TestSaveAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	first := RunRecord{
		GameID:  "snake",
		Seed:    [2]byte{78, 45},
		Width:   16,
		Height:  16,
		Outcome: "lose",
		Reason:  "Ouroboros",
		Size:    12,
		Steps:   340,
	}
	second := RunRecord{
		GameID:  "snake_legacy",
		Seed:    [2]byte{255, 0},
		Width:   2,
		Height:  2,
		Outcome: "win",
		Reason:  "Board full",
		Size:    4,
		Steps:   3,
	}

	for _, r := range []RunRecord{first, second} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("RecentRuns() returned %d runs, want 2", len(runs))
	}

	// newest first
	got := runs[0]
	if got.GameID != "snake_legacy" || got.Seed != second.Seed || got.Outcome != "win" ||
		got.Reason != "Board full" || got.Size != 4 || got.Steps != 3 || got.Width != 2 {
		t.Errorf("runs[0] = %+v", got)
	}
	if runs[1].Seed != first.Seed || runs[1].Steps != 340 {
		t.Errorf("runs[1] = %+v", runs[1])
	}
	if got.ID == 0 || got.CreatedAt.IsZero() {
		t.Errorf("ID and CreatedAt should be set: %+v", got)
	}
}

func TestRecentRunsFilterAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(RunRecord{GameID: "snake", Outcome: "lose", Size: i + 1})
	}
	store.SaveRun(RunRecord{GameID: "snake_legacy", Outcome: "lose", Size: 9})

	runs, err := store.RecentRuns("snake", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("RecentRuns() returned %d runs, want 3", len(runs))
	}
	for i, want := range []int{5, 4, 3} {
		if runs[i].Size != want || runs[i].GameID != "snake" {
			t.Errorf("runs[%d] = %+v, want size %d", i, runs[i], want)
		}
	}
}

func TestRunFromSummary(t *testing.T) {
	s := core.RunSummary{
		GameID:  "snake",
		Seed:    [2]byte{6, 3},
		Width:   4,
		Height:  4,
		Outcome: "lose",
		Reason:  "Ouroboros",
		Size:    5,
		Steps:   17,
	}
	want := RunRecord{GameID: "snake", Seed: [2]byte{6, 3}, Width: 4, Height: 4,
		Outcome: "lose", Reason: "Ouroboros", Size: 5, Steps: 17}
	if got := RunFromSummary(s); got != want {
		t.Errorf("RunFromSummary() = %+v, want %+v", got, want)
	}
}

package core

// RunSummary describes a finished round for storage and export.
type RunSummary struct {
	GameID  string
	Seed    [2]byte // generator state when the round started
	Width   int
	Height  int
	Outcome string // "win" or "lose"
	Reason  string
	Size    int
	Steps   uint64
}

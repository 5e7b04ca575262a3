package snake

// Outcome is the state a simulation step leaves the game in.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Lose
)

// Reasons attached to terminal results.
const (
	ReasonOuroboros = "Ouroboros"
	ReasonBoardFull = "Board full"
	ReasonFoodProbe = "Food probe failed"
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "unknown"
	}
}

// Result is returned by Tick. Win and Lose carry a reason.
type Result struct {
	Outcome Outcome
	Reason  string
}

// Terminal reports whether the result ends the game.
func (r Result) Terminal() bool {
	return r.Outcome != Continue
}

func (r Result) String() string {
	if r.Reason == "" {
		return r.Outcome.String()
	}
	return r.Outcome.String() + " (" + r.Reason + ")"
}

func won(reason string) Result {
	return Result{Outcome: Win, Reason: reason}
}

func lost(reason string) Result {
	return Result{Outcome: Lose, Reason: reason}
}

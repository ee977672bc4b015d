package entity

import "time"

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

// GameResult - the outcome of a game so far. Winner is set only when Status is StatusWon.
type GameResult struct {
	Status string `json:"status"`
	Winner Piece  `json:"winner"`
}

func InProgress() GameResult {
	return GameResult{Status: StatusInProgress}
}

func Won(by Piece) GameResult {
	return GameResult{Status: StatusWon, Winner: by}
}

func Draw() GameResult {
	return GameResult{Status: StatusDraw}
}

func (that GameResult) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that GameResult) IsWon() bool {
	return that.Status == StatusWon
}

func (that GameResult) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that GameResult) IsFinished() bool {
	return that.IsWon() || that.IsDraw()
}

// GameRecord - the summary of a finished game kept by the results repository.
type GameRecord struct {
	ID         string     `json:"id"`
	Dimensions Dimensions `json:"dimensions"`
	Result     GameResult `json:"result"`
	Moves      []Move     `json:"moves"`
	FinishedAt time.Time  `json:"finished_at"`
}

// Tally - finished game counts per outcome.
type Tally struct {
	PlayerAWins int `json:"player_a_wins"`
	PlayerBWins int `json:"player_b_wins"`
	Draws       int `json:"draws"`
}

// Add - counts one more finished game.
func (that *Tally) Add(result GameResult) {
	switch {
	case result.IsWon() && result.Winner == PlayerA:
		that.PlayerAWins++
	case result.IsWon() && result.Winner == PlayerB:
		that.PlayerBWins++
	case result.IsDraw():
		that.Draws++
	}
}

func (that Tally) Total() int {
	return that.PlayerAWins + that.PlayerBWins + that.Draws
}

package entity

// Result records how a single round ended. Winner is PlayerX, PlayerO or PlayerTie.
type Result struct {
	RoundID string `json:"round_id"`
	Winner  string `json:"winner"`
}

// Scoreboard holds per-mark win counters and a tie counter for the running
// process. Round resets never touch it.
type Scoreboard struct {
	WinsX   int      `json:"wins_x"`
	WinsO   int      `json:"wins_o"`
	Ties    int      `json:"ties"`
	Results []Result `json:"results,omitempty"`
}

// Record - applies one round result to the counters and the result log.
func (that *Scoreboard) Record(result Result) {
	switch result.Winner {
	case PlayerX:
		that.WinsX++
	case PlayerO:
		that.WinsO++
	case PlayerTie:
		that.Ties++
	}

	that.Results = append(that.Results, result)
}

// RoundsPlayed - total rounds that reached a terminal state.
func (that *Scoreboard) RoundsPlayed() int {
	return that.WinsX + that.WinsO + that.Ties
}

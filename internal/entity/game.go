package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	BoardSize = 9
)

const (
	LocalMode = "local"
	BotMode   = "bot"
)

// WinCombos lists every winning line: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Game struct {
	ID     string            `json:"id"`
	Board  [BoardSize]string `json:"board"`
	Winner string            `json:"winner"`
	Status string            `json:"status"`
	Turn   string            `json:"player_turn"`
	Mode   string            `json:"mode"`
}

// NewGame - creates a fresh round: empty board, X to move, ongoing.
func NewGame(mode string) *Game {
	return &Game{
		ID:     uuid.NewString(),
		Turn:   PlayerX,
		Status: StatusOngoing,
		Mode:   mode,
	}
}

// Reset - clears the round in place: new ID, empty board, X to move, ongoing.
// Scores are not part of the round and stay untouched.
func (that *Game) Reset() {
	that.ID = uuid.NewString()
	that.Board = [BoardSize]string{}
	that.Winner = ""
	that.Turn = PlayerX
	that.Status = StatusOngoing
}

// DetermineGameResult - returns the winning mark, PlayerTie when the board is
// full without a winner, or an empty string while the round continues.
func (that *Game) DetermineGameResult() string {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return ""
		}
	}

	return PlayerTie
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsLocal() bool {
	return that.Mode == LocalMode
}

func (that *Game) IsWithBot() bool {
	return that.Mode == BotMode
}

// ConfirmOngoingState - guards mutating operations against finished rounds.
func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// ToggleMark - returns the opposite mark; unconditional.
func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

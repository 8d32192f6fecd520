package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

// MakeTurn - applies one move for the given mark and updates the round status.
// Violations (finished round, bad index, wrong turn, occupied cell) are reported
// as sentinel errors and leave the board unchanged.
func MakeTurn(gameInstance *entity.Game, mark string, cell int) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := validateMove(gameInstance, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board[cell] = mark
	updateGameStatus(gameInstance, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, mark string, cell int) error {
	if cell < 0 || cell >= len(gameInstance.Board) {
		return apperror.ErrInvalidCell
	}

	if gameInstance.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if gameInstance.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the round status after a move.
func updateGameStatus(gameInstance *entity.Game, mark string) {
	switch winner := gameInstance.DetermineGameResult(); winner {
	case entity.PlayerX, entity.PlayerO:
		gameInstance.Winner = winner
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = ""
	case entity.PlayerTie:
		gameInstance.Winner = entity.PlayerTie
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = ""
	default:
		gameInstance.Turn = entity.ToggleMark(mark)
	}
}

// CheckWin - reports whether some row, column or diagonal is fully marked by mark.
func CheckWin(board [entity.BoardSize]string, mark string) bool {
	for _, combo := range entity.WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}

	return false
}

// IsDraw - reports whether all nine cells are occupied. Callers check wins
// first; a full board with a winner is not a draw.
func IsDraw(board [entity.BoardSize]string) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

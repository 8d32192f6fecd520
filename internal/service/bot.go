package service

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/tictactoe"
)

// centerCell is the defensive fallback when the heuristic is asked for a move
// on a full board. Unreachable when callers check the round status first.
const centerCell = 4

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	rng *rand.Rand
}

// NewBotService - the rng drives the random-fallback move; tests inject a
// seeded source for reproducible picks.
func NewBotService(rng *rand.Rand) BotService {
	return &botService{rng: rng}
}

// MakeTurn - picks a cell for whichever mark the round expects and applies it.
func (that *botService) MakeTurn(game *entity.Game) error {
	if !hasEmptyCell(game.Board) {
		return apperror.ErrNoAvailableMoves
	}

	chosenCell := that.pickCell(game.Board, game.Turn)

	if err := tictactoe.MakeTurn(game, game.Turn, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// pickCell - the move heuristic, scanning empty cells in row-major order:
//  1. a cell that wins the round for the bot's own mark,
//  2. else a cell that blocks the opponent's immediate win,
//  3. else a uniformly random empty cell.
func (that *botService) pickCell(board [entity.BoardSize]string, botMark string) int {
	if cell, ok := findWinningCell(board, botMark); ok {
		return cell
	}

	if cell, ok := findWinningCell(board, entity.ToggleMark(botMark)); ok {
		return cell
	}

	availableCells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == entity.EmptyCell {
			availableCells = append(availableCells, i)
		}
	}

	if len(availableCells) == 0 {
		return centerCell
	}

	return availableCells[that.rng.Intn(len(availableCells))]
}

// findWinningCell - returns the first empty cell whose placement completes a
// line for mark.
func findWinningCell(board [entity.BoardSize]string, mark string) (int, bool) {
	for i, cell := range board {
		if cell != entity.EmptyCell {
			continue
		}

		board[i] = mark
		if tictactoe.CheckWin(board, mark) {
			return i, true
		}
		board[i] = entity.EmptyCell
	}

	return 0, false
}

func hasEmptyCell(board [entity.BoardSize]string) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return true
		}
	}

	return false
}

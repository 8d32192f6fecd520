package service

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot(seed int64) *botService {
	return &botService{rng: rand.New(rand.NewSource(seed))} //nolint: gosec // deterministic test source
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Completes its own win before blocking the opponent", func(t *testing.T) {
		// Given: X threatens the top row, O threatens the middle row, O to move
		game := entity.NewGame(entity.BotMode)
		game.Board = [entity.BoardSize]string{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		game.Turn = entity.PlayerO

		// When: the bot moves
		bot := newTestBot(1)
		err := bot.MakeTurn(game)

		// Then: it takes its own winning cell, not the blocking one
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Board[5])
		assert.Equal(t, entity.EmptyCell, game.Board[2])
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.PlayerO, game.Winner)
	})

	t.Run("Blocks the opponent when it has no win of its own", func(t *testing.T) {
		// Given: X has two in the top row, O has no immediate win
		game := entity.NewGame(entity.BotMode)
		game.Board = [entity.BoardSize]string{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		game.Turn = entity.PlayerO

		// When: the bot moves
		bot := newTestBot(1)
		err := bot.MakeTurn(game)

		// Then: it blocks the top row
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Board[2])
		assert.True(t, game.IsOngoing())
	})

	t.Run("Falls back to a random empty cell when nothing is forced", func(t *testing.T) {
		// Given: an opening position with no threats and the same seed twice
		firstGame := entity.NewGame(entity.BotMode)
		firstGame.Board[0] = entity.PlayerX
		firstGame.Turn = entity.PlayerO

		secondGame := entity.NewGame(entity.BotMode)
		secondGame.Board[0] = entity.PlayerX
		secondGame.Turn = entity.PlayerO

		// When: two bots with the same seed move
		require.NoError(t, newTestBot(42).MakeTurn(firstGame))
		require.NoError(t, newTestBot(42).MakeTurn(secondGame))

		// Then: both picked the same empty cell, and exactly two marks are on each board
		assert.Equal(t, firstGame.Board, secondGame.Board)
		assert.Equal(t, 2, countMarks(firstGame.Board))
		assert.Equal(t, entity.PlayerX, firstGame.Turn)
		assert.True(t, firstGame.IsOngoing())
	})

	t.Run("Returns ErrNoAvailableMoves on a full board", func(t *testing.T) {
		// Given: a full board
		game := entity.NewGame(entity.BotMode)
		game.Board = [entity.BoardSize]string{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerX,
		}

		// When: the bot is asked to move
		err := newTestBot(1).MakeTurn(game)

		// Then: it reports that no moves are available
		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

func TestBotService_pickCell(t *testing.T) {
	t.Run("Prefers the first winning cell in row-major order", func(t *testing.T) {
		// Given: O can win on two different lines
		board := [entity.BoardSize]string{
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerX, entity.PlayerX,
			entity.PlayerO, entity.EmptyCell, entity.EmptyCell,
		}

		// When: the bot picks a cell for O
		cell := newTestBot(1).pickCell(board, entity.PlayerO)

		// Then: it takes the earliest winning cell
		assert.Equal(t, 2, cell)
	})

	t.Run("Full board falls back to the center cell", func(t *testing.T) {
		// Given: a board with no empty cell; callers never reach this
		board := [entity.BoardSize]string{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerX,
		}

		// When: the heuristic is forced to answer anyway
		cell := newTestBot(1).pickCell(board, entity.PlayerO)

		// Then: it returns the center
		assert.Equal(t, centerCell, cell)
	})
}

func countMarks(board [entity.BoardSize]string) int {
	marks := 0
	for _, cell := range board {
		if cell != entity.EmptyCell {
			marks++
		}
	}

	return marks
}

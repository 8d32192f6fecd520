package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/tictactoe"
)

type scoreRepo interface {
	Record(ctx context.Context, result entity.Result) error
	Get(ctx context.Context) (*entity.Scoreboard, error)
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

// GameManager owns the current round and drives it from UI events: it applies
// human moves, answers with the bot move in bot mode, and records terminal
// results on the scoreboard.
type GameManager struct {
	logger    *slog.Logger
	scoreRepo scoreRepo
	bot       botService

	game *entity.Game
}

func NewGameManager(logger *slog.Logger, scoreRepo scoreRepo, bot botService, mode string) (*GameManager, error) {
	if mode != entity.LocalMode && mode != entity.BotMode {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownGameMode, mode)
	}

	return &GameManager{
		logger:    logger,
		scoreRepo: scoreRepo,
		bot:       bot,

		game: entity.NewGame(mode),
	}, nil
}

func (that *GameManager) CurrentGame() *entity.Game {
	return that.game
}

// MakeTurn - applies the mark whose turn it is to the given cell. Invalid
// input (occupied cell, out-of-range index, move after the round ended) is a
// no-op: the round state is returned unchanged and no error surfaces, since
// the UI disables such cells and the engine must stay defensive regardless.
// In bot mode a continuing round gets the bot's reply in the same call.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn")

	if err := tictactoe.MakeTurn(that.game, that.game.Turn, cell); err != nil {
		if isIgnorableTurnError(err) {
			log.Debug("ignoring invalid move", "cell", cell, "error", err)
			return that.game, nil
		}

		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if that.game.IsFinished() {
		if err := that.recordResult(ctx); err != nil {
			return nil, err
		}

		return that.game, nil
	}

	if that.game.IsWithBot() {
		if err := that.bot.MakeTurn(that.game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}

		if that.game.IsFinished() {
			if err := that.recordResult(ctx); err != nil {
				return nil, err
			}
		}
	}

	return that.game, nil
}

// Reset - starts a fresh round in the current mode; the scoreboard is untouched.
func (that *GameManager) Reset() *entity.Game {
	that.game.Reset()

	return that.game
}

// SwitchMode - flips between local and bot play and resets the round.
func (that *GameManager) SwitchMode() *entity.Game {
	if that.game.IsWithBot() {
		that.game.Mode = entity.LocalMode
	} else {
		that.game.Mode = entity.BotMode
	}

	return that.Reset()
}

func (that *GameManager) Scores(ctx context.Context) (*entity.Scoreboard, error) {
	scoreboard, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return scoreboard, nil
}

func (that *GameManager) recordResult(ctx context.Context) error {
	result := entity.Result{
		RoundID: that.game.ID,
		Winner:  that.game.Winner,
	}

	if err := that.scoreRepo.Record(ctx, result); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	that.logger.Info("round finished", "round", result.RoundID, "winner", result.Winner)

	return nil
}

func isIgnorableTurnError(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrGameFinished)
}

package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/config"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/service"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/ui"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/usecase"
)

// RunApp - wires the scoreboard, the bot and the game manager together and
// runs the terminal UI until the player quits or the process is signalled.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game moves, not secrets

	scoreRepo := repository.NewScoreRepository()
	botService := service.NewBotService(rng)

	gameManager, err := usecase.NewGameManager(logger, scoreRepo, botService, conf.Game.DefaultMode)
	if err != nil {
		return fmt.Errorf("could not create game manager: %w", err)
	}

	log.Info("Starting game", "mode", conf.Game.DefaultMode)

	program := tea.NewProgram(
		ui.New(ctx, logger, gameManager, conf),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err = program.Run(); err != nil {
		return fmt.Errorf("UI stopped with error: %w", err)
	}

	log.Info("Game exited")

	return nil
}

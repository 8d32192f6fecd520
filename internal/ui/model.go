package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/config"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/usecase"
)

const gridWidth = 3

// Model is the single screen of the game: the board with a movable cursor,
// the status line, the session scoreboard and the key help.
type Model struct {
	ctx     context.Context
	logger  *slog.Logger
	manager *usecase.GameManager

	strings config.Strings
	players config.Game
	theme   theme

	cursor int
	scores entity.Scoreboard
}

func New(ctx context.Context, logger *slog.Logger, manager *usecase.GameManager, conf *config.Config) Model {
	return Model{
		ctx:     ctx,
		logger:  logger.With("component", "ui"),
		manager: manager,

		strings: conf.Strings,
		players: conf.Game,
		theme:   newTheme(conf.UI.Theme),

		cursor: entity.BoardSize / 2,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor >= gridWidth {
			m.cursor -= gridWidth
		}
	case "down", "j":
		if m.cursor < entity.BoardSize-gridWidth {
			m.cursor += gridWidth
		}
	case "left", "h":
		if m.cursor%gridWidth > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%gridWidth < gridWidth-1 {
			m.cursor++
		}
	case "enter", " ":
		if _, err := m.manager.MakeTurn(m.ctx, m.cursor); err != nil {
			m.logger.Error("failed to make turn", "cell", m.cursor, "error", err)
			return m, nil
		}
		m.refreshScores()
	case "r":
		m.manager.Reset()
	case "m":
		m.manager.SwitchMode()
	}

	return m, nil
}

func (m Model) View() string {
	game := m.manager.CurrentGame()

	var view strings.Builder

	view.WriteString(m.theme.title.Render(m.strings.Title))
	view.WriteString("  ")
	view.WriteString(m.theme.mode.Render(m.modeLabel(game)))
	view.WriteString("\n\n")

	for row := 0; row < gridWidth; row++ {
		cells := make([]string, 0, gridWidth)
		for col := 0; col < gridWidth; col++ {
			cells = append(cells, m.renderCell(game, row*gridWidth+col))
		}

		view.WriteString(strings.Join(cells, m.theme.grid.Render("│")))
		view.WriteString("\n")

		if row < gridWidth-1 {
			view.WriteString(m.theme.grid.Render("───┼───┼───"))
			view.WriteString("\n")
		}
	}

	view.WriteString("\n")
	view.WriteString(m.theme.status.Render(m.statusLine(game)))
	view.WriteString("\n")
	view.WriteString(m.theme.score.Render(m.scoreLine(game)))
	view.WriteString("\n\n")
	view.WriteString(m.theme.help.Render(m.strings.Help))
	view.WriteString("\n")

	return view.String()
}

func (m Model) renderCell(game *entity.Game, idx int) string {
	var cell string
	switch game.Board[idx] {
	case entity.PlayerX:
		cell = m.theme.markX.Render(entity.PlayerX)
	case entity.PlayerO:
		cell = m.theme.markO.Render(entity.PlayerO)
	default:
		cell = m.theme.empty.Render("·")
	}

	if idx == m.cursor {
		return m.theme.cursor.Render(cell)
	}

	return cell
}

func (m Model) statusLine(game *entity.Game) string {
	if game.IsFinished() {
		if game.Winner == entity.PlayerTie {
			return m.strings.TieMessage
		}

		return fmt.Sprintf(m.strings.WinMessage, m.nameFor(game, game.Winner))
	}

	return fmt.Sprintf(m.strings.TurnPrompt, m.nameFor(game, game.Turn))
}

func (m Model) scoreLine(game *entity.Game) string {
	return fmt.Sprintf(m.strings.ScoreLine,
		m.nameFor(game, entity.PlayerX), m.scores.WinsX,
		m.scores.WinsO, m.nameFor(game, entity.PlayerO),
		m.scores.Ties,
	)
}

func (m Model) modeLabel(game *entity.Game) string {
	if game.IsWithBot() {
		return m.strings.ModeBot
	}

	return m.strings.ModeLocal
}

// nameFor - the O seat belongs to the bot in bot mode.
func (m Model) nameFor(game *entity.Game, mark string) string {
	if mark == entity.PlayerX {
		return m.players.PlayerXName
	}

	if game.IsWithBot() {
		return m.players.BotName
	}

	return m.players.PlayerOName
}

func (m *Model) refreshScores() {
	scores, err := m.manager.Scores(m.ctx)
	if err != nil {
		m.logger.Error("failed to refresh scores", "error", err)
		return
	}

	m.scores = *scores
}

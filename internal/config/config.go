package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game    `yaml:"game"`
	UI       UI      `yaml:"ui"`
	Strings  Strings `yaml:"strings"`
}

type Game struct {
	DefaultMode string `yaml:"default-mode" env:"GAME_MODE" env-default:"bot"`
	PlayerXName string `yaml:"player-x-name" env-default:"Player X"`
	PlayerOName string `yaml:"player-o-name" env-default:"Player O"`
	BotName     string `yaml:"bot-name" env-default:"Bot"`
}

type UI struct {
	Theme string `yaml:"theme" env:"UI_THEME" env-default:"auto"`
}

// Strings holds every player-facing message so translations live in the config
// file instead of the code.
type Strings struct {
	Title      string `yaml:"title" env-default:"tic-tac-toe"`
	TurnPrompt string `yaml:"turn-prompt" env-default:"%s to move"`
	WinMessage string `yaml:"win-message" env-default:"%s wins the round!"`
	TieMessage string `yaml:"tie-message" env-default:"it's a tie"`
	ScoreLine  string `yaml:"score-line" env-default:"%s %d : %d %s (ties %d)"`
	ModeLocal  string `yaml:"mode-local" env-default:"two players"`
	ModeBot    string `yaml:"mode-bot" env-default:"vs bot"`
	Help       string `yaml:"help" env-default:"arrows/hjkl move | enter place | r reset | m mode | q quit"`
}

// MustLoad - load all configurations from the config file; a missing file
// falls back to environment variables and the env-default values, so the game
// is playable with no config at all.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

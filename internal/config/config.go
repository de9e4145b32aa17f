package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	appName        = "tictactoe"
	configFileName = "config.yml"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	NoColor  bool    `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	Board    Board   `yaml:"board"`
	Players  Players `yaml:"players"`
}

type Board struct {
	CellSize int `yaml:"cell-size" env:"TICTACTOE_CELL_SIZE" env-default:"100"`
}

type Players struct {
	X string `yaml:"x" env:"TICTACTOE_PLAYER_X" env-default:"Player X"`
	O string `yaml:"o" env:"TICTACTOE_PLAYER_O" env-default:"Player O"`
}

var ErrInvalidCellSize = errors.New("cell size must be positive")

// Load reads the YAML file at path with environment overrides. When path is
// empty, ./config.yml and then the XDG config directory are tried; if neither
// exists only the environment and defaults apply.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		path = lookupDefaultPath()
	}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	if that.Board.CellSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCellSize, that.Board.CellSize)
	}
	return nil
}

func lookupDefaultPath() string {
	candidates := []string{configFileName}

	if xdgPath, err := xdg.SearchConfigFile(filepath.Join(appName, configFileName)); err == nil {
		candidates = append(candidates, xdgPath)
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

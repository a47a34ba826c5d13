package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Replay   Replay `yaml:"replay"`
	Render   Render `yaml:"render"`
}

// Replay is a move script applied to a fresh game, one "from-to" pair or
// "resign" per entry.
type Replay struct {
	Moves    []string `yaml:"moves" env:"REPLAY_MOVES" env-separator:","`
	Progress bool     `yaml:"progress" env:"REPLAY_PROGRESS" env-default:"false"`
}

type Render struct {
	Color bool `yaml:"color" env:"RENDER_COLOR"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

package config

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweeper/game"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Size     uint  `yaml:"size"`
	NumMines uint  `yaml:"mines"`
	Seed     int64 `yaml:"seed"`

	LogLevel string `yaml:"log_level"`

	// Name of the director playing on the player's behalf; empty for manual play
	Director string `yaml:"director"`
	// Delay between director moves when playing continuously
	DirectorInterval time.Duration `yaml:"director_interval"`

	// Side of one cell on screen, in pixels
	CellWidth uint `yaml:"cell_width"`
}

var Directors = []string{"", "random", "constraint"}

func Default() Config {
	return Config{
		Size:             game.DefaultSize,
		NumMines:         game.DefaultNumMines,
		LogLevel:         logrus.InfoLevel.String(),
		DirectorInterval: 250 * time.Millisecond,
		CellWidth:        32,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	config := Default()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, config.Validate()
}

func (config Config) Validate() error {
	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	if !isDirector(config.Director) {
		return fmt.Errorf("unknown director %q", config.Director)
	}
	if config.DirectorInterval < 0 {
		return fmt.Errorf("negative director_interval %v", config.DirectorInterval)
	}
	if config.CellWidth == 0 {
		return fmt.Errorf("cell_width must be positive")
	}

	return config.Game().Validate()
}

// Game returns the engine configuration
func (config Config) Game() game.Config {
	gameConfig := game.NewConfig()
	gameConfig.Size = config.Size
	gameConfig.NumMines = config.NumMines
	gameConfig.Seed = config.Seed
	return gameConfig
}

func (config Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (config Config) Marshal() ([]byte, error) {
	return yaml.Marshal(config)
}

func isDirector(name string) bool {
	for _, director := range Directors {
		if director == name {
			return true
		}
	}
	return false
}

package cmd

import (
	"fmt"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/sweeper/config"
	directors "github.com/they4kman/sweeper/director"
	"github.com/they4kman/sweeper/director/constraint"
	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/ui"
)

var log = logrus.New()

var (
	appConfig  = config.Default()
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play Minesweeper",
	Long: `gosweep is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually
	gosweep

Left click reveals a cell (or chords a revealed number), right click toggles a
flag, middle click chords. Press Enter to start over once the game ends.

Use the director flag to let the computer play; Space toggles autoplay and the
Right Arrow performs a single move
	gosweep --director constraint
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := newBoard()
		if err != nil {
			return err
		}

		options := ui.Options{
			CellWidth:        appConfig.CellWidth,
			Director:         newDirector(appConfig.Director, board.Seed()),
			DirectorInterval: appConfig.DirectorInterval,
		}

		var runErr error
		pixelgl.Run(func() {
			runErr = ui.Run(board, options)
		})
		return runErr
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers explicitly set flags over the config file, if any.
func loadConfig(flags *pflag.FlagSet) error {
	fromFlags := appConfig

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		appConfig = loaded

		flags.Visit(func(flag *pflag.Flag) {
			switch flag.Name {
			case "size":
				appConfig.Size = fromFlags.Size
			case "mines":
				appConfig.NumMines = fromFlags.NumMines
			case "seed":
				appConfig.Seed = fromFlags.Seed
			case "log-level":
				appConfig.LogLevel = fromFlags.LogLevel
			case "director":
				appConfig.Director = fromFlags.Director
			case "director-interval":
				appConfig.DirectorInterval = fromFlags.DirectorInterval
			case "cell-width":
				appConfig.CellWidth = fromFlags.CellWidth
			}
		})
	}

	if err := appConfig.Validate(); err != nil {
		return err
	}

	level := appConfig.Level()
	for _, logger := range []*logrus.Logger{log, game.Log, directors.Log, constraint.Log, ui.Log} {
		logger.SetLevel(level)
	}

	log.WithFields(logrus.Fields{
		"config": configPath,
		"size":   appConfig.Size,
		"mines":  appConfig.NumMines,
	}).Debug("configuration loaded")
	return nil
}

func newBoard() (*game.Board, error) {
	gameConfig := appConfig.Game()
	gameConfig.OnGameEnd = func(board *game.Board) {
		log.WithFields(logrus.Fields{
			"state": board.State(),
			"seed":  board.Seed(),
		}).Info("game over")
	}
	return game.NewBoard(gameConfig)
}

func newDirector(name string, seed int64) game.Director {
	switch name {
	case "random":
		return random.New(seed)
	case "constraint":
		return constraint.New(seed)
	default:
		return nil
	}
}

type directorValue string

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (value *directorValue) String() string {
	return string(*value)
}

func (value *directorValue) Set(name string) error {
	for _, director := range config.Directors {
		if director == name {
			*value = directorValue(name)
			return nil
		}
	}
	return fmt.Errorf("invalid director %q", name)
}

func (value *directorValue) Type() string {
	return "director"
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&configPath, "config", "c", "", "YAML file to read settings from; flags override it")
	flags.UintVarP(&appConfig.Size, "size", "s", appConfig.Size, "Width and height of the game board, in cells")
	flags.UintVarP(&appConfig.NumMines, "mines", "m", appConfig.NumMines, "Number of mines to place in the game board")
	flags.Int64Var(&appConfig.Seed, "seed", 0, "Seed for the first mine layout (0 picks one at random)")
	flags.StringVar(&appConfig.LogLevel, "log-level", appConfig.LogLevel, "Logging level (trace, debug, info, warn, error)")
	flags.VarP(newDirectorValue(appConfig.Director, &appConfig.Director), "director", "d", `Make the computer play.
random: reveal random covered cells
constraint: play moves proven by the numbers, guess otherwise`)
	flags.DurationVar(&appConfig.DirectorInterval, "director-interval", appConfig.DirectorInterval, "Delay between director moves during autoplay")
	flags.UintVar(&appConfig.CellWidth, "cell-width", appConfig.CellWidth, "Size of a cell on screen, in pixels")
}

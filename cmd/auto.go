package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	directors "github.com/they4kman/sweeper/director"
)

var numGames uint

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Let a director play games without a window and report how it did",
	RunE: func(cmd *cobra.Command, args []string) error {
		if appConfig.Director == "" {
			appConfig.Director = "constraint"
		}

		board, err := newBoard()
		if err != nil {
			return err
		}

		director := newDirector(appConfig.Director, board.Seed())

		summary := directors.PlaySeries(board, director, int(numGames))
		fmt.Fprintln(cmd.OutOrStdout(), summary)
		return nil
	},
}

func init() {
	autoCmd.Flags().UintVarP(&numGames, "games", "n", 100, "Number of games to play")
	rootCmd.AddCommand(autoCmd)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/input"
	"github.com/rocketscienceinc/tictactoe/internal/render"
)

func Replay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <row,col>...",
		Short: "Apply a list of moves and print the result",
		Long: heredoc.Doc(`
			Play the given moves in order, X first, then print the board and
			the outcome. Fails on the first move that is not accepted.
		`),
		Example: heredoc.Doc(`
			$ tictactoe replay 0,0 1,1 0,1 1,0 0,2
		`),
		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			game := entity.NewGame()
			renderer := render.New(cmd.OutOrStdout(), conf.NoColor)

			for i, arg := range args {
				cell, err := input.ParseCell(strings.Split(arg, ","))
				if err != nil {
					return fmt.Errorf("move %d %q: %w", i+1, arg, err)
				}

				if err = game.ApplyMove(cell.Row, cell.Col); err != nil {
					_ = renderer.Board(game)
					return fmt.Errorf("move %d %q: %w", i+1, arg, err)
				}
			}

			if err = renderer.Board(game); err != nil {
				return err
			}

			return renderer.Line("Outcome: " + string(game.Outcome()))
		},
	}

	return cmd
}

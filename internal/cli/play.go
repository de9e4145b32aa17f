package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe/internal"
)

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game",
		Long: heredoc.Doc(`
			Start an interactive session. Players take turns typing
			"move <row> <col>" or "click <x> <y>"; type "help" for all commands.
		`),
		Example: heredoc.Doc(`
			$ tictactoe play --x Alice --o Bob
			$ tictactoe play --config ./config.yml --no-color
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("x") {
				conf.Players.X, _ = flags.GetString("x")
			}
			if flags.Changed("o") {
				conf.Players.O, _ = flags.GetString("o")
			}
			if flags.Changed("no-color") {
				conf.NoColor, _ = flags.GetBool("no-color")
			}

			logger := application.NewLogger(cmd.ErrOrStderr(), conf.LogLevel)

			if err = application.RunApp(cmd.Context(), logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().String("x", "", "name of the player using X")
	cmd.Flags().String("o", "", "name of the player using O")
	cmd.Flags().Bool("no-color", os.Getenv("NO_COLOR") != "", "disable coloured marks")

	return cmd
}

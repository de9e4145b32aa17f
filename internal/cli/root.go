package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe/internal/config"
)

const flagConfig = "config"

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Local two-player tic-tac-toe",
		Long: heredoc.Doc(`
			Play tic-tac-toe against a friend on the same terminal.

			X always moves first. A round ends when a player completes a row,
			column or diagonal, or when all nine cells are filled.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringP(flagConfig, "c", "", "path to config.yml (default ./config.yml, then the XDG config dir)")

	root.AddCommand(Play())
	root.AddCommand(Replay())

	return root
}

// loadConfig reads the config named by the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}

	return config.Load(path)
}

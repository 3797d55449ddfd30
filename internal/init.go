package internal

import (
	"github.com/MrSnakeDoc/gat/internal/initiator"
	"github.com/MrSnakeDoc/gat/internal/logger"

	"github.com/spf13/cobra"
)

func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize gat configuration",
		Long: `Initialize gat configuration.
This command will:
- Create the configuration directory in ~/.config/gat
- Write a default config.yml (cache TTL, optional token and proxy)`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := initiator.New().Execute(); err != nil {
				return err
			}

			logger.Success("Initialized gat configuration")
			return nil
		},
	}
}

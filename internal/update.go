package internal

import (
	"context"

	"github.com/MrSnakeDoc/gat/internal/update"
	"github.com/spf13/cobra"
)

func NewUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Check for a newer gat release",
		Long: `Check for a newer gat release.

Examples:
  gat update            # Force a release check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := update.New(nil, nil)
			return u.Execute(context.Background())
		},
	}
	return cmd
}

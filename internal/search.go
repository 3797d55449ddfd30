package internal

import (
	"github.com/MrSnakeDoc/gat/internal/globalconfig"
	"github.com/MrSnakeDoc/gat/internal/middleware"
	"github.com/MrSnakeDoc/gat/internal/search"

	"github.com/spf13/cobra"
)

func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search templates by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := middleware.Get[*globalconfig.Settings](cmd, middleware.CtxKeySettings)
			if err != nil {
				return err
			}

			remoteDir, err := cmd.Flags().GetString("dir")
			if err != nil {
				return err
			}

			fetcher, err := newFetcher(settings)
			if err != nil {
				return err
			}

			return search.New(fetcher).Execute(cmd.Context(), args[0], remoteDir)
		},
	}

	cmd.Flags().StringP("dir", "d", "", "Remote subdirectory to search")
	return cmd
}

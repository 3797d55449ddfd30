package internal

import (
	"github.com/MrSnakeDoc/gat/internal/globalconfig"
	"github.com/MrSnakeDoc/gat/internal/list"
	"github.com/MrSnakeDoc/gat/internal/middleware"

	"github.com/spf13/cobra"
)

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available .gitattributes templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			return list.New(fetcher).Execute(cmd.Context(), remoteDir)
		},
	}

	cmd.Flags().StringP("dir", "d", "", "Remote subdirectory to list")
	return cmd
}

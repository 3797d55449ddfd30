package middleware

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/gat/internal/globalconfig"
	"github.com/spf13/cobra"
)

func RequireConfig(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error {
	settings, err := globalconfig.Load()
	if err != nil {
		return fmt.Errorf("missing config: %w", err)
	}

	ctx := context.WithValue(cmd.Context(), CtxKeySettings, settings)
	cmd.SetContext(ctx)

	return next(cmd, args)
}

package internal

import (
	"github.com/MrSnakeDoc/gat/internal/middleware"
	"github.com/spf13/cobra"
)

var defaultCommands = []middleware.CommandFactory{
	NewInitCmd,
	middleware.UseMiddlewareChain(middleware.RequireConfig)(NewListCmd),
	middleware.UseMiddlewareChain(middleware.RequireConfig)(NewSearchCmd),
	middleware.UseMiddlewareChain(middleware.RequireConfig)(NewPullCmd),
	NewUpdateCmd,
}

func RegisterSubCommands(cmd *cobra.Command) {
	for _, factory := range defaultCommands {
		cmd.AddCommand(factory())
	}
}

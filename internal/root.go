package internal

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MrSnakeDoc/gat/internal/checker"
	"github.com/MrSnakeDoc/gat/internal/errs"
	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/MrSnakeDoc/gat/internal/notifier"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gat",
		Short: "Pull .gitattributes templates into your project",
		Long: `Gat fetches .gitattributes templates from the community catalog and writes
them into your project, either replacing the local file or appending to it
while keeping a single '* text=auto' directive.`,
		Example: `gat pull Go`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.ConfigureLoggerFromFlags()
		},
		Run: func(cmd *cobra.Command, _ []string) {
			versionFlag, _ := cmd.Flags().GetBool("version")
			if versionFlag {
				fmt.Printf("Version: %s\n", checker.Version)
			}
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			noUpdate, _ := cmd.Flags().GetBool("no-update-check")

			envNoUpdate := strings.TrimSpace(os.Getenv("GAT_NO_UPDATE_CHECK")) == "1"

			v, _ := cmd.Flags().GetBool("version")

			name := cmd.Name()

			switch {
			case name == "update",
				name == "help",
				name == "completion",
				name == "gat" && v,
				envNoUpdate || noUpdate:
				return nil
			}

			check := checker.New(nil, nil)
			if _, err := check.Execute(context.Background(), false); err != nil {
				logger.Debug("Failed to check for updates: %v", err)
				return nil
			}

			notifier.DisplayUpdateNotification()

			return nil
		},
		SilenceUsage: true,
		// Errors are reported once by main; a cancelled prompt is filtered
		// out in Execute and never reaches the user.
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("version", "v", false, "Print version information")
	cmd.PersistentFlags().Bool("no-update-check", false, "Skip update check")
	cmd.PersistentFlags().CountVarP(&logger.FlagVerboseCount, "verbose", "V", "Increase log verbosity")
	cmd.PersistentFlags().BoolVarP(&logger.FlagQuiet, "quiet", "q", false, "Only print errors")

	RegisterSubCommands(cmd)

	return cmd
}

func Execute() error {
	root := NewRootCmd()

	if err := root.Execute(); err != nil {
		// A declined prompt is not a failure; stay silent.
		if errs.IsCancelled(err) {
			return nil
		}
		logger.Debug("Failed to execute root command: %v", err)
		return err
	}
	return nil
}

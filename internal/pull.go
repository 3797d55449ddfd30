package internal

import (
	"github.com/MrSnakeDoc/gat/internal/globalconfig"
	"github.com/MrSnakeDoc/gat/internal/middleware"
	"github.com/MrSnakeDoc/gat/internal/pull"

	"github.com/spf13/cobra"
)

func NewPullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull [template]",
		Short: "Fetch a template and write it to your .gitattributes",
		Long: `Fetch a .gitattributes template and write it to a local file.
Without a template argument an interactive picker is shown. When the target
file already exists you choose between overwriting and appending; appending
comments out duplicate '* text=auto' directives.

Examples:
    gat pull               # Pick a template interactively
    gat pull Go            # Fetch the Go template
    gat pull Go --append   # Append it to the existing file`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := middleware.Get[*globalconfig.Settings](cmd, middleware.CtxKeySettings)
			if err != nil {
				return err
			}

			opts, err := pullOptions(cmd, args)
			if err != nil {
				return err
			}

			puller, err := pull.New(settings, nil, nil, nil)
			if err != nil {
				return err
			}

			return puller.Execute(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringP("dir", "d", "", "Remote subdirectory to pull from")
	cmd.Flags().StringP("output", "o", ".gitattributes", "Target file")
	cmd.Flags().BoolP("append", "a", false, "Append to the target file")
	cmd.Flags().BoolP("overwrite", "f", false, "Overwrite the target file")

	return cmd
}

func pullOptions(cmd *cobra.Command, args []string) (pull.Options, error) {
	var opts pull.Options
	var err error

	if len(args) > 0 {
		opts.Template = args[0]
	}

	if opts.RemoteDir, err = cmd.Flags().GetString("dir"); err != nil {
		return opts, err
	}
	if opts.Target, err = cmd.Flags().GetString("output"); err != nil {
		return opts, err
	}
	if opts.Append, err = cmd.Flags().GetBool("append"); err != nil {
		return opts, err
	}
	if opts.Overwrite, err = cmd.Flags().GetBool("overwrite"); err != nil {
		return opts, err
	}

	return opts, nil
}

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smartkit/stackup/internal/logging"
	"github.com/smartkit/stackup/internal/runner"
	"github.com/smartkit/stackup/internal/stacks"
)

func newDownCommand(logLevel *string) *cobra.Command {
	var projectName string
	var rootDir string
	cmd := &cobra.Command{
		Use:           "down",
		Short:         "Stop and remove both stacks' containers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(*logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			r := runner.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
			ctl := stacks.NewController(rootDir, r)
			if projectName != "" {
				ctl.Project = projectName
			}
			log.Info("tearing down project", zap.String("project", ctl.Project))
			return ctl.Down(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&projectName, "project-name", stacks.DefaultProject, "Compose project name shared by both stacks")
	cmd.Flags().StringVar(&rootDir, "dir", ".", "Invocation root holding docker-compose.yml")
	return cmd
}

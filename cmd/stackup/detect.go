package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartkit/stackup/internal/hostprofile"
)

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "detect",
		Short:         "Probe the host GPU and print the compose profile that would be used",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			det := hostprofile.NewDetector(cmd.ErrOrStderr())
			fmt.Fprintln(cmd.OutOrStdout(), string(det.Detect()))
			return nil
		},
	}
}

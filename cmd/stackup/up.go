// up.go declares the 'stackup up' command, the full launch sequence. The bare
// root command runs the same sequence for parity with the original launcher.
package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/smartkit/stackup/internal/hostprofile"
	"github.com/smartkit/stackup/internal/launcher"
	"github.com/smartkit/stackup/internal/logging"
	"github.com/smartkit/stackup/internal/stacks"
	"github.com/smartkit/stackup/internal/version"
)

type launchFlags struct {
	profile     string
	projectName string
	rootDir     string
	wait        time.Duration
	skipSync    bool
	validate    bool
}

func newLaunchFlags() *launchFlags {
	return &launchFlags{
		projectName: stacks.DefaultProject,
		rootDir:     ".",
		wait:        launcher.DefaultWait,
	}
}

func (f *launchFlags) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.profile, "profile", "", "Compose profile for the local-AI stack: cpu, gpu-nvidia, gpu-amd, or none (default: auto-detect)")
	fs.StringVar(&f.projectName, "project-name", f.projectName, "Compose project name shared by both stacks")
	fs.StringVar(&f.rootDir, "dir", f.rootDir, "Invocation root holding docker-compose.yml and .env")
	fs.DurationVar(&f.wait, "wait", f.wait, "Fixed pause between Supabase and local-AI startup (0 disables the pause)")
	fs.BoolVar(&f.skipSync, "skip-sync", false, "Skip cloning/updating the Supabase repository")
	fs.BoolVar(&f.validate, "validate", false, "Parse both compose files before touching Docker")
}

func newUpCommand(logLevel *string) *cobra.Command {
	opts := newLaunchFlags()
	cmd := &cobra.Command{
		Use:           "up",
		Short:         "Run the full launch sequence",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd, opts, *logLevel)
		},
	}
	opts.Bind(cmd.Flags())
	return cmd
}

func runLaunch(cmd *cobra.Command, f *launchFlags, logLevel string) error {
	// Reject a bad profile before any side effect.
	if f.profile != "" {
		if _, err := hostprofile.Parse(f.profile); err != nil {
			return err
		}
	}
	log, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log.Debug("starting", zap.String("build", version.Get().String()))

	l := launcher.New(log, cmd.OutOrStdout())
	return l.Run(cmd.Context(), launcher.Options{
		Profile:     f.profile,
		ProjectName: f.projectName,
		Root:        f.rootDir,
		Wait:        f.wait,
		SkipSync:    f.skipSync,
		Validate:    f.validate,
	})
}

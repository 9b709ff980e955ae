// main.go bootstraps stackup: it builds the root Cobra command, binds
// environment configuration, and executes with a signal-aware context.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	logLevel := "info"
	opts := newLaunchFlags()
	cmd := &cobra.Command{
		Use:   "stackup",
		Short: "Sequenced launcher for the Supabase and local-AI compose stacks",
		Long: "stackup starts the Supabase stack first, waits for it to initialize, and then\n" +
			"starts the local-AI stack. Both stacks share one compose project name so they\n" +
			"appear together in Docker Desktop.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd, opts, logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level for stackup output (debug, info, warn, error)")
	opts.Bind(cmd.Flags())

	upCmd := newUpCommand(&logLevel)
	downCmd := newDownCommand(&logLevel)
	detectCmd := newDetectCommand()
	envCmd := newEnvCommand()
	cmd.AddCommand(upCmd, downCmd, detectCmd, envCmd, newVersionCommand())

	cmd.Example = `  # Start both stacks, auto-detecting the GPU profile
  stackup

  # Force the CPU profile and validate compose files first
  stackup up --profile cpu --validate

  # Tear everything down
  stackup down`

	bindViper(cmd, upCmd, downCmd, detectCmd, envCmd)
	return cmd
}

func bindViper(commands ...*cobra.Command) {
	if len(commands) == 0 {
		return
	}
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("STACKUP")
	v.AutomaticEnv()
	configFile := os.Getenv("STACKUP_CONFIG")
	configureConfigFile(v, configFile)

	cobra.OnInitialize(func() {
		for _, cmd := range commands {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				cobra.CheckErr(err)
			}
			if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
				cobra.CheckErr(err)
			}
		}
		if err := readConfigFile(v, configFile != ""); err != nil {
			cobra.CheckErr(err)
		}
		for _, cmd := range commands {
			flagSets := []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()}
			for _, fs := range flagSets {
				fs.VisitAll(func(f *pflag.Flag) {
					if f.Changed {
						return
					}
					if !v.IsSet(f.Name) {
						return
					}
					val := fmt.Sprintf("%v", v.Get(f.Name))
					if val != "" {
						_ = f.Value.Set(val)
					}
				})
			}
		}
	})
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "stackup"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "stackup"))
	}
	v.AddConfigPath(".")
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	switch {
	case strings.Contains(message, "Cannot connect to the Docker daemon"):
		message = fmt.Sprintf("%s\nHint: is the Docker daemon running?", err)
	case strings.Contains(message, "executable file not found"):
		message = fmt.Sprintf("%s\nHint: stackup shells out to git and docker; both must be on PATH.", err)
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// Package launcher sequences the full run: profile resolution, repository
// sync, env propagation, teardown, and the two stack startups. Every step
// blocks on the previous one; the first failure aborts the run with no
// cleanup or rollback.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/smartkit/stackup/internal/envfile"
	"github.com/smartkit/stackup/internal/hostprofile"
	"github.com/smartkit/stackup/internal/reposync"
	"github.com/smartkit/stackup/internal/runner"
	"github.com/smartkit/stackup/internal/stacks"
)

// Options configure one run.
type Options struct {
	// Profile is the explicit compose profile; empty means auto-detect.
	Profile     string
	ProjectName string
	// Root is the invocation directory holding docker-compose.yml and .env.
	Root string
	// Wait is the fixed pause between the Supabase and local-AI startups. It
	// stands in for readiness signaling; there is no health polling. Zero or
	// negative skips the pause; the CLI defaults the flag to DefaultWait.
	Wait     time.Duration
	SkipSync bool
	Validate bool
}

// DefaultWait matches the original launcher's fixed initialization pause.
const DefaultWait = 10 * time.Second

// Launcher owns the collaborators a run needs. New wires the real ones; tests
// populate the fields directly.
type Launcher struct {
	Runner   runner.Runner
	Detector *hostprofile.Detector
	Log      *zap.Logger
	Out      io.Writer
	// Wait pauses between stack startups; tests substitute a recorder.
	Wait func(ctx context.Context, d time.Duration) error
}

// New returns a Launcher wired to the host.
func New(log *zap.Logger, out io.Writer) *Launcher {
	return &Launcher{
		Runner:   runner.New(out, os.Stderr),
		Detector: hostprofile.NewDetector(out),
		Log:      log,
		Out:      out,
	}
}

// Run executes the launch sequence. Ordering is fixed: sync, env copy,
// teardown, Supabase up, wait, local-AI up.
func (l *Launcher) Run(ctx context.Context, opts Options) error {
	profile, err := l.Detector.Resolve(opts.Profile)
	if err != nil {
		return err
	}
	l.log().Info("profile resolved", zap.String("profile", string(profile)))

	if opts.SkipSync {
		l.log().Info("repository sync skipped")
	} else {
		if err := reposync.Sync(ctx, l.Runner, l.log(), reposync.DefaultOptions(opts.Root)); err != nil {
			return err
		}
	}

	src := filepath.Join(opts.Root, ".env")
	dst := filepath.Join(opts.Root, "supabase", "docker", ".env")
	fmt.Fprintln(l.out(), "Copying .env to supabase/docker/.env...")
	if err := envfile.Propagate(src, dst); err != nil {
		return err
	}
	if n, err := envfile.Count(dst); err != nil {
		l.log().Warn("env file did not parse cleanly", zap.Error(err))
	} else {
		l.log().Info("env file propagated", zap.Int("variables", n))
		if n == 0 {
			l.log().Warn("env file defines no variables", zap.String("path", src))
		}
	}

	ctl := stacks.NewController(opts.Root, l.Runner)
	if opts.ProjectName != "" {
		ctl.Project = opts.ProjectName
	}

	if opts.Validate {
		if err := ctl.ValidateFiles(ctx); err != nil {
			return err
		}
		l.log().Info("compose files validated")
	}

	fmt.Fprintf(l.out(), "Stopping and removing existing containers for project %q...\n", ctl.Project)
	if err := ctl.Down(ctx); err != nil {
		return err
	}

	fmt.Fprintln(l.out(), "Starting Supabase services...")
	if err := ctl.UpSupabase(ctx); err != nil {
		return err
	}

	if opts.Wait > 0 {
		fmt.Fprintln(l.out(), "⌛ Waiting for Supabase to initialize...")
		if err := l.wait(ctx, opts.Wait); err != nil {
			return err
		}
	}

	fmt.Fprintln(l.out(), "Starting local AI services...")
	return ctl.UpAI(ctx, profile)
}

func (l *Launcher) wait(ctx context.Context, d time.Duration) error {
	if l.Wait != nil {
		return l.Wait(ctx, d)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (l *Launcher) log() *zap.Logger {
	if l.Log != nil {
		return l.Log
	}
	return zap.NewNop()
}

func (l *Launcher) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

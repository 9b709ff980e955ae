// Package runner is the single process-invocation primitive: every external
// collaborator (git, docker compose) is reached through it.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command is one external process invocation. Args are handed to the OS
// discretely; nothing is shell-interpreted.
type Command struct {
	Name string
	Args []string
	// Dir overrides the child's working directory. Empty keeps the caller's.
	Dir string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes external commands. A non-nil error means the child failed
// and the caller must abort; there is no partial-failure recovery.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands on the host, echoing each command line before it
// executes and streaming the child's output through.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an ExecRunner writing through the given streams; nil writers
// fall back to the process's own.
func New(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{Stdout: stdout, Stderr: stderr}
}

func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	fmt.Fprintf(r.stdout(), "Running: %s\n", cmd)

	proc := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	proc.Dir = cmd.Dir
	var stderr bytes.Buffer
	proc.Stdout = r.stdout()
	proc.Stderr = io.MultiWriter(r.stderr(), &stderr)
	if err := proc.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", cmd, err, firstLine(msg))
		}
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return nil
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// firstLine keeps errors single-line; the full stderr already went to the
// caller's stream.
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return s
}

// Package stacks drives docker compose for the unified project: the Supabase
// stack and the local-AI stack share one project name so they appear as a
// single unit in Docker Desktop.
package stacks

import (
	"context"
	"path/filepath"

	"github.com/smartkit/stackup/internal/hostprofile"
	"github.com/smartkit/stackup/internal/runner"
)

const (
	// DefaultProject groups both stacks under one compose project name.
	DefaultProject = "smart-kit-lm"
	// DefaultAIFile is the local-AI compose file at the invocation root.
	DefaultAIFile = "docker-compose.yml"
)

// DefaultSupabaseFile is the compose file inside the sparse checkout.
var DefaultSupabaseFile = filepath.Join("supabase", "docker", "docker-compose.yml")

// Controller composes docker compose invocations scoped to one project.
type Controller struct {
	Project      string
	AIFile       string
	SupabaseFile string
	// Dir is the invocation root; compose file paths are relative to it.
	Dir    string
	Runner runner.Runner
}

// NewController returns a Controller with the project defaults.
func NewController(root string, r runner.Runner) *Controller {
	return &Controller{
		Project:      DefaultProject,
		AIFile:       DefaultAIFile,
		SupabaseFile: DefaultSupabaseFile,
		Dir:          root,
		Runner:       r,
	}
}

// Down stops and removes containers from both stacks. It is safe to call when
// nothing is running, which is what makes a re-run idempotent.
func (c *Controller) Down(ctx context.Context) error {
	return c.compose(ctx, "-f", c.AIFile, "-f", c.SupabaseFile, "down")
}

// UpSupabase starts the Supabase stack detached. No profile applies to it.
func (c *Controller) UpSupabase(ctx context.Context) error {
	return c.compose(ctx, "-f", c.SupabaseFile, "up", "-d")
}

// UpAI starts the local-AI stack detached. The sentinel "none" suppresses the
// --profile flag entirely; any other profile is injected before the -f pair.
func (c *Controller) UpAI(ctx context.Context, profile hostprofile.Profile) error {
	var args []string
	if profile != "" && profile != hostprofile.ProfileNone {
		args = append(args, "--profile", string(profile))
	}
	args = append(args, "-f", c.AIFile, "up", "-d")
	return c.compose(ctx, args...)
}

func (c *Controller) compose(ctx context.Context, args ...string) error {
	full := append([]string{"compose", "-p", c.Project}, args...)
	return c.Runner.Run(ctx, runner.Command{Name: "docker", Args: full, Dir: c.Dir})
}

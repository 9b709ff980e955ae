// Package reposync materializes the Supabase repository as a blobless sparse
// checkout holding only its docker/ subdirectory.
package reposync

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/smartkit/stackup/internal/runner"
)

// Options describe the checkout to ensure. All paths are explicit; nothing
// depends on the process working directory.
type Options struct {
	Dir       string // local checkout directory
	RemoteURL string
	Branch    string
	SparseDir string // subdirectory kept by the sparse checkout
}

// DefaultOptions returns the Supabase checkout rooted under the invocation
// directory.
func DefaultOptions(root string) Options {
	return Options{
		Dir:       filepath.Join(root, "supabase"),
		RemoteURL: "https://github.com/supabase/supabase.git",
		Branch:    "master",
		SparseDir: "docker",
	}
}

// Sync clones the repository on first run and pulls on subsequent runs. A
// partial clone left behind by an interrupted first run is not detected;
// deleting the directory and re-running is the documented recovery.
func Sync(ctx context.Context, r runner.Runner, log *zap.Logger, opts Options) error {
	if _, err := os.Stat(opts.Dir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", opts.Dir, err)
		}
		return clone(ctx, r, log, opts)
	}
	log.Info("repository present, pulling", zap.String("dir", opts.Dir))
	return r.Run(ctx, runner.Command{Name: "git", Args: []string{"pull"}, Dir: opts.Dir})
}

func clone(ctx context.Context, r runner.Runner, log *zap.Logger, opts Options) error {
	log.Info("cloning repository",
		zap.String("url", opts.RemoteURL),
		zap.String("dir", opts.Dir),
		zap.String("sparse", opts.SparseDir))
	steps := []runner.Command{
		{Name: "git", Args: []string{"clone", "--filter=blob:none", "--no-checkout", opts.RemoteURL, opts.Dir}},
		{Name: "git", Args: []string{"sparse-checkout", "init", "--cone"}, Dir: opts.Dir},
		{Name: "git", Args: []string{"sparse-checkout", "set", opts.SparseDir}, Dir: opts.Dir},
		{Name: "git", Args: []string{"checkout", opts.Branch}, Dir: opts.Dir},
	}
	for _, step := range steps {
		if err := r.Run(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

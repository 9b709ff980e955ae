package stacks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/compose-spec/compose-go/v2/loader"
	composetypes "github.com/compose-spec/compose-go/v2/types"
)

// ValidateFiles preflight-parses both compose files so syntax problems surface
// before any container is touched. Each stack is loaded on its own: they are
// independent projects that merely share a project name at runtime.
func (c *Controller) ValidateFiles(ctx context.Context) error {
	for _, file := range []string{c.AIFile, c.SupabaseFile} {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.Dir, file)
		}
		if _, err := LoadProject(ctx, []string{path}, c.Project, nil); err != nil {
			return fmt.Errorf("validate %s: %w", file, err)
		}
	}
	return nil
}

// LoadProject parses compose files into a project, resolving variables from
// the process environment the same way docker compose would.
func LoadProject(ctx context.Context, files []string, projectName string, profiles []string) (*composetypes.Project, error) {
	env := make(composetypes.Mapping)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[key] = value
	}

	configFiles := make([]composetypes.ConfigFile, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read compose file %s: %w", path, err)
		}
		configFiles = append(configFiles, composetypes.ConfigFile{Filename: path, Content: data})
	}

	details := composetypes.ConfigDetails{
		WorkingDir:  filepath.Dir(files[0]),
		ConfigFiles: configFiles,
		Environment: env,
	}

	return loader.LoadWithContext(ctx, details, func(o *loader.Options) {
		if projectName != "" {
			o.SetProjectName(projectName, true)
		}
		if len(profiles) > 0 {
			o.Profiles = append(o.Profiles, profiles...)
		}
	})
}

// Package envcatalog documents the environment variables stackup honors, for
// the `stackup env` command.
package envcatalog

type VarInfo struct {
	Category    string
	Name        string
	Description string
	Dynamic     bool
}

func Catalog() []VarInfo {
	return []VarInfo{
		{
			Category:    "Config",
			Name:        "STACKUP_CONFIG",
			Description: "Path to the stackup config file.",
		},
		{
			Category:    "Config",
			Name:        "STACKUP_<FLAG>",
			Dynamic:     true,
			Description: "Set any stackup CLI flag via environment (hyphens become underscores). Example: STACKUP_PROFILE=gpu-nvidia.",
		},
		{
			Category:    "Output",
			Name:        "NO_COLOR",
			Description: "Disable ANSI color output (any non-empty value).",
		},
		{
			Category:    "Compose",
			Name:        "DOCKER_HOST",
			Description: "Docker daemon address; passed through unchanged to docker compose.",
		},
		{
			Category:    "Compose",
			Name:        "COMPOSE_HTTP_TIMEOUT",
			Description: "docker compose client timeout in seconds; passed through unchanged.",
		},
	}
}

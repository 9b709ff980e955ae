package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/smartkit/stackup/internal/launcher"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"up", "down", "detect", "env", "version"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("subcommand %q not registered", name)
		}
	}
}

func TestUpRejectsInvalidProfileBeforeAnySideEffect(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"up", "--profile", "tpu"})
	err := root.ExecuteContext(context.Background())
	if err == nil {
		t.Fatal("expected invalid profile error")
	}
	if !strings.Contains(err.Error(), "invalid profile") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpWaitFlagDefaultsToFixedPause(t *testing.T) {
	root := newRootCommand()
	upCmd, _, err := root.Find([]string{"up"})
	if err != nil {
		t.Fatalf("Find up: %v", err)
	}
	flag := upCmd.Flags().Lookup("wait")
	if flag == nil {
		t.Fatal("up command missing --wait flag")
	}
	if flag.DefValue != launcher.DefaultWait.String() {
		t.Fatalf("--wait default = %q, want %q", flag.DefValue, launcher.DefaultWait.String())
	}
}

func TestEnvCommandEmitsJSON(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"env", "--format", "json"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("env command: %v", err)
	}
	var rows []envRow
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(rows) == 0 {
		t.Fatal("expected at least one catalog row")
	}
}

func TestEnvCommandRejectsUnknownFormat(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"env", "--format", "toml"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestVersionCommandShortOutput(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"version", "--short"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("version command: %v", err)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatal("expected version output")
	}
}

func TestDetectCommandPrintsAProfile(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"detect"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("detect command: %v", err)
	}
	got := strings.TrimSpace(out.String())
	switch got {
	case "cpu", "gpu-nvidia", "gpu-amd":
	default:
		t.Fatalf("detect printed %q, want one of the probe outcomes", got)
	}
}

package hostprofile

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func detectorFor(t *testing.T, nvidia, amd bool) (*Detector, *bytes.Buffer, *int) {
	t.Helper()
	probes := 0
	out := &bytes.Buffer{}
	d := &Detector{
		LookPath: func(file string) (string, error) {
			probes++
			if file == "nvidia-smi" && nvidia {
				return "/usr/bin/nvidia-smi", nil
			}
			return "", errors.New("executable file not found in $PATH")
		},
		Stat: func(name string) (fs.FileInfo, error) {
			probes++
			if name == "/dev/kfd" && amd {
				return nil, nil
			}
			return nil, fs.ErrNotExist
		},
		Out: out,
	}
	return d, out, &probes
}

func TestParseAcceptsEnumeratedValues(t *testing.T) {
	for _, value := range []string{"cpu", "gpu-nvidia", "gpu-amd", "none"} {
		p, err := Parse(value)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", value, err)
		}
		if string(p) != value {
			t.Fatalf("Parse(%q) = %q", value, p)
		}
	}
}

func TestParseRejectsUnknownValue(t *testing.T) {
	if _, err := Parse("tpu"); err == nil {
		t.Fatal("expected error for unknown profile")
	}
}

func TestResolveExplicitPassThroughSkipsProbing(t *testing.T) {
	for _, value := range []string{"cpu", "gpu-nvidia", "gpu-amd", "none"} {
		d, _, probes := detectorFor(t, true, true)
		p, err := d.Resolve(value)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", value, err)
		}
		if string(p) != value {
			t.Fatalf("Resolve(%q) = %q, want pass-through", value, p)
		}
		if *probes != 0 {
			t.Fatalf("Resolve(%q) probed the host %d times", value, *probes)
		}
	}
}

func TestDetectNvidiaTakesPrecedenceOverAMD(t *testing.T) {
	d, out, _ := detectorFor(t, true, true)
	if p := d.Detect(); p != ProfileGPUNvidia {
		t.Fatalf("Detect = %q, want %q", p, ProfileGPUNvidia)
	}
	if !strings.Contains(out.String(), "NVIDIA GPU detected") {
		t.Fatalf("missing status line, got %q", out.String())
	}
}

func TestDetectAMDWhenNvidiaAbsent(t *testing.T) {
	d, out, _ := detectorFor(t, false, true)
	if p := d.Detect(); p != ProfileGPUAMD {
		t.Fatalf("Detect = %q, want %q", p, ProfileGPUAMD)
	}
	if !strings.Contains(out.String(), "AMD GPU detected") {
		t.Fatalf("missing status line, got %q", out.String())
	}
}

func TestDetectFallsBackToCPU(t *testing.T) {
	d, out, _ := detectorFor(t, false, false)
	if p := d.Detect(); p != ProfileCPU {
		t.Fatalf("Detect = %q, want %q", p, ProfileCPU)
	}
	if !strings.Contains(out.String(), "No GPU detected") {
		t.Fatalf("missing status line, got %q", out.String())
	}
}

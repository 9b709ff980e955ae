// Package hostprofile resolves the compose profile matching the host's GPU
// hardware. NVIDIA is probed before AMD; a host with neither runs the cpu
// profile.
package hostprofile

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"

	"github.com/fatih/color"
)

// Profile selects which optional compose services are enabled at startup.
type Profile string

const (
	ProfileCPU       Profile = "cpu"
	ProfileGPUNvidia Profile = "gpu-nvidia"
	ProfileGPUAMD    Profile = "gpu-amd"
	// ProfileNone is a sentinel: downstream callers must not inject a
	// --profile flag at all, which is different from an absent value.
	ProfileNone Profile = "none"
)

// amdDeviceNode is the ROCm/KFD device node exposed by the amdgpu driver.
const amdDeviceNode = "/dev/kfd"

// Parse validates an explicit profile value from the CLI.
func Parse(value string) (Profile, error) {
	switch Profile(value) {
	case ProfileCPU, ProfileGPUNvidia, ProfileGPUAMD, ProfileNone:
		return Profile(value), nil
	}
	return "", fmt.Errorf("invalid profile %q (expected cpu, gpu-nvidia, gpu-amd, or none)", value)
}

// Detector probes the host for GPU capability. The probe functions are fields
// so tests can simulate hardware combinations.
type Detector struct {
	LookPath func(file string) (string, error)
	Stat     func(name string) (fs.FileInfo, error)
	Out      io.Writer
}

// NewDetector returns a Detector wired to the real host.
func NewDetector(out io.Writer) *Detector {
	return &Detector{LookPath: exec.LookPath, Stat: os.Stat, Out: out}
}

// Resolve returns the explicit profile unchanged when one was given (including
// the literal "none") and probes the host only when it was absent.
func (d *Detector) Resolve(explicit string) (Profile, error) {
	if explicit != "" {
		return Parse(explicit)
	}
	return d.Detect(), nil
}

// Detect probes NVIDIA first, then AMD, then falls back to cpu. A missing
// utility or device node is a normal branch, never an error.
func (d *Detector) Detect() Profile {
	if _, err := d.lookPath("nvidia-smi"); err == nil {
		d.status(color.GreenString("✅ NVIDIA GPU detected"))
		return ProfileGPUNvidia
	}
	if _, err := d.stat(amdDeviceNode); err == nil {
		d.status(color.GreenString("✅ AMD GPU detected"))
		return ProfileGPUAMD
	}
	d.status(color.YellowString("⚠️  No GPU detected, using CPU"))
	return ProfileCPU
}

func (d *Detector) lookPath(file string) (string, error) {
	if d.LookPath != nil {
		return d.LookPath(file)
	}
	return exec.LookPath(file)
}

func (d *Detector) stat(name string) (fs.FileInfo, error) {
	if d.Stat != nil {
		return d.Stat(name)
	}
	return os.Stat(name)
}

func (d *Detector) status(line string) {
	if d.Out == nil {
		return
	}
	fmt.Fprintln(d.Out, line)
}

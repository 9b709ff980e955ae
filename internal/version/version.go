// Package version exposes the build metadata stamped into stackup binaries.
package version

import (
	"fmt"
	"runtime"
)

// Stamped at build time, e.g.:
//
//	go build -ldflags "-X github.com/smartkit/stackup/internal/version.Version=v0.2.0"
//
// Unstamped binaries report the dev defaults below.
var (
	Version      = "dev"
	GitCommit    = "unknown"
	GitTreeState = "unknown" // clean, dirty, or unknown
	BuildDate    = "unknown" // RFC3339, UTC
)

// Info is the resolved metadata for one stackup binary.
type Info struct {
	Version      string
	GitCommit    string
	GitTreeState string
	BuildDate    string
	GoVersion    string
	Platform     string
}

// Get combines the stamped values with the toolchain and platform the binary
// was built for.
func Get() Info {
	return Info{
		Version:      Version,
		GitCommit:    GitCommit,
		GitTreeState: GitTreeState,
		BuildDate:    BuildDate,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the short form used by log headers and --short output.
func (i Info) String() string {
	return fmt.Sprintf("stackup %s (%s)", i.Version, i.Platform)
}

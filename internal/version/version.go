// Package version reports the build version of headerscroll.
package version

import (
	"runtime"
	"runtime/debug"
)

// Version and Commit are set at build time with
// -ldflags "-X .../internal/version.Version=1.0.0 -X .../internal/version.Commit=abc1234".
var (
	Version = "development"
	Commit  = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}

// Get returns the build information. When no commit was injected the VCS
// revision recorded by the Go toolchain is used, shortened to seven characters.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, GoVersion: runtime.Version()}
	if info.Commit != "unknown" {
		return info
	}
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			info.Commit = s.Value
			if len(info.Commit) > 7 {
				info.Commit = info.Commit[:7]
			}
		}
	}
	return info
}

// String returns the version, with the commit appended when known.
func String() string {
	info := Get()
	if info.Commit != "unknown" {
		return info.Version + "+" + info.Commit
	}
	return info.Version
}

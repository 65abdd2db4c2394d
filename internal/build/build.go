// Package build provides build-time information for the CLI application.
package build

import (
	"runtime/debug"
)

// Set via ldflags:
// -X github.com/tacogips/promptgen/internal/build.version=x.y.z
var (
	version   string
	gitCommit string
	buildDate string
)

// Version returns the application version.
// Priority: ldflags > module build info > "dev"
func Version() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// GitCommit returns the VCS revision the binary was built from.
func GitCommit() string {
	if gitCommit != "" {
		return gitCommit
	}
	if v := buildSetting("vcs.revision"); v != "" {
		return v
	}
	return "unknown"
}

// BuildDate returns the build or commit time.
func BuildDate() string {
	if buildDate != "" {
		return buildDate
	}
	if v := buildSetting("vcs.time"); v != "" {
		return v
	}
	return "unknown"
}

func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

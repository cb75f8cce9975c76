// Package misc holds small helpers needed across package boundaries.
package misc

import "runtime/debug"

// Set at build time via -ldflags "-X folio/misc.version=... -X folio/misc.gitHash=...".
var (
	appName = "folio"
	version = "0.0.0-dev"
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	if len(gitHash) != 0 {
		return gitHash
	}
	// fallback for "go install" builds
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

// Package misc keeps program identification used across logging, reporting
// and the CLI.
package misc

import "runtime/debug"

const appName = "openspout"

// Set at build time via -ldflags "-X ...". When left empty values are
// recovered from the module build info.
var (
	version string
	gitHash string
)

// GetAppName returns the short program name used for log files, temp file
// prefixes and the CLI binary.
func GetAppName() string {
	return appName
}

// GetVersion returns the program version.
func GetVersion() string {
	if len(version) != 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) != 0 {
		return bi.Main.Version
	}
	return "unknown"
}

// GetGitHash returns the vcs revision the program was built from.
func GetGitHash() string {
	if len(gitHash) != 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

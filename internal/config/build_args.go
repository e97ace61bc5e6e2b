package config

import "fmt"

// Build arguments, substituted at link time via -ldflags.
var (
	// ModuleName is the go module name of this project.
	ModuleName = "github/chapool/tx-signer"
	// Commit is the current git commit hash.
	Commit = "> 40 chars of git commit hash of build <"
	// BuildDate is the RFC3339 timestamp of the build.
	BuildDate = "1970-01-01T00:00:00+00:00"
)

// GetFormattedBuildArgs returns "ModuleName @ Commit (BuildDate)".
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}

// Package version holds build metadata injected via ldflags:
//
//	-X github.com/kailas-cloud/learnrec/internal/version.Version=v1.2.0
package version

import "fmt"

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

const shortCommitLen = 7

// String formats the build metadata for the startup log and -version output,
// for example "v1.2.0 (3f9c2ab, 2026-10-14)".
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, shortCommit(Commit), Date)
}

func shortCommit(c string) string {
	if len(c) > shortCommitLen {
		return c[:shortCommitLen]
	}
	return c
}

package buildinfo

import "fmt"

// Set at link time with -ldflags "-X geodna/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String describes the build for the --version flag.
func String() string {
	return fmt.Sprintf("%s (commit=%s, date=%s)", Version, Commit, Date)
}

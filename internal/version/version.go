package version

import "fmt"

// Build information, set via ldflags at release time
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a formatted version string
func Info() string {
	return fmt.Sprintf("sabha %s (commit %s, built %s)", Version, Commit, Date)
}

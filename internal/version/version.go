// Package version holds build metadata injected at link time.
package version

// Set via -ldflags "-X git.home.luguber.info/inful/doctheme/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String formats the build metadata for the --version flag.
func String() string {
	return Version + " (" + GitCommit + ", built " + BuildTime + ")"
}

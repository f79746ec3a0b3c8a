// Package version exposes build metadata injected through -ldflags.
package version

//nolint:gochecknoglobals // These are overwritten at build time via -ldflags.
var (
	// Version is the semantic version of the build.
	Version = "0.1.0"
	// Commit is the VCS revision of the build.
	Commit = "none"
	// BuildTime is the moment the binary was built.
	BuildTime = "unknown"
)

// Short returns the bare version.
func Short() string {
	return Version
}

// Full returns version, commit and build time in one line.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}

// Package version exposes the build identity stamped by the release
// pipeline through -ldflags "-X".
package version

// Defaults apply to a plain `go build` with no stamping.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

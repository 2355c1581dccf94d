// Package buildinfo exposes build-time version metadata.
package buildinfo

// Set at build time via -ldflags.
//
//nolint:gochecknoglobals // Build metadata populated by the linker.
var (
	// Version is the docslicer release version.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

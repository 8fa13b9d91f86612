// Package version exposes the build version of the carbontrack binary.
package version

// version is set at build time via -ldflags.
var version = "dev" //nolint:gochecknoglobals // overridden by the linker

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

// Package version exposes the build version of the ecopack binary.
package version

// version is overridden at build time via
// -ldflags "-X github.com/rahulstox/ecopack/pkg/version.version=v1.2.3".
var version = "dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

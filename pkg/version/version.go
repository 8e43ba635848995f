// Package version reports the build version stamped in at link time.
package version

// version is overridden with -ldflags "-X prepkit/pkg/version.version=v1.2.3".
var version = "dev"

// Version returns the stamped version, or "dev" for local builds.
func Version() string {
	return version
}

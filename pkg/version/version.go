// Package version exposes the build version.
package version

// version is injected at build time:
//
//	go build -ldflags="-X 'github.com/NVIDIA/netpol-report/pkg/version.version=1.0.0'"
var version = "dev"

// Version returns the build version string.
func Version() string {
	return version
}

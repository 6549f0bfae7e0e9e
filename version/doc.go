// Package version provides version information and build metadata for fileops.
//
// Values can be injected at build time:
//
//	-ldflags "-X github.com/dendrascience/dendra-fileops/version.Version=v1.0.0 -X github.com/dendrascience/dendra-fileops/version.Commit=abc1234"
//
// Otherwise the module version and VCS settings embedded by the Go toolchain
// are used, with "development" as the last resort.
package version

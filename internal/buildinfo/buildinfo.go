// Package buildinfo holds version information injected at build time, e.g.
//
//	go build -ldflags "-X github.com/watchfire-io/calllog/internal/buildinfo.Version=0.3.0"
package buildinfo

var (
	Version    = "dev"
	Codename   = "unreleased"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

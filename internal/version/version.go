// Package version exposes build information stamped in via -ldflags.
package version

// Set at build time, e.g.
//
//	go build -ldflags "-X .../internal/version.Version=v0.3.0"
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// Info holds the build information for the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
}

// Get returns the build information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
	}
}

// Package version carries build metadata injected via -ldflags.
package version

var (
	// Version is the released version of the tams binary.
	Version = "0.1.0-dev"
	// Commit is the git commit the binary was built from.
	Commit = ""
	// BuildDate is the UTC build timestamp.
	BuildDate = ""
)

// UserAgent is sent with every portal request.
func UserAgent() string {
	return "tams-cli/" + Version
}

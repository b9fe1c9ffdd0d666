// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Adreel is the canonical application identifier used for filesystem paths and CLI branding.
	Adreel = "adreel"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// Repository hosts the releases checked by the update notifier.
	Repository = "adreel-cli/adreel"

	// UserAgent is sent with every request made against the share host.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

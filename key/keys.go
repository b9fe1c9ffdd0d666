// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playlist Hand-off - these keys locate the record written by the collector and read by the player.
const (
	PlaylistPath = "playlist.path"
)

// Media Playback - these keys select and tune the external playback engine.
const (
	Player            = "player.default"
	PlayerAutoAdvance = "player.autoadvance"
	PlayerResume      = "player.resume"
)

// Stream Resolution - these keys govern how share links are turned into direct stream URLs.
const (
	ResolveFormat       = "resolve.format"
	ResolveProbeTimeout = "resolve.probe_timeout"
)

// Drive API - optional metadata lookups against the share host.
const (
	DriveAPIKey      = "drive.api_key"
	DriveFetchTitles = "drive.fetch_titles"
)

// Click-through - how landing links are opened.
const (
	BrowserApp = "browser.app"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

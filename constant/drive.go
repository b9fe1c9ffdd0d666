package constant

// Share host identifiers.
const (
	// DriveSharePrefix is the prefix every accepted source link must carry.
	DriveSharePrefix = "https://drive.google.com/"

	// DriveDirectURL is the template of the direct download endpoint for a file id.
	DriveDirectURL = "https://drive.google.com/uc?id=%s"
)

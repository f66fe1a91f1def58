package config

const (
	// Moderation
	ReportThreshold = 5  // strictly-greater-than comparison: the 6th report escalates
	SlugMaxAttempts = 20 // bounded suffix retry before giving up on a slug

	// Redis
	BanKeyPrefix   = "ban:"
	ModfeedChannel = "modfeed:events"
)

package util

// Config holds runtime settings and flags.
type Config struct {
	SeedText     string
	DSN          string // empty disables persistence
	Theme        string // riviera|notte
	ContentPath  string // optional YAML content pack
	RulesVersion string
}

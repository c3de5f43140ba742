package graph

// Config controls how component files are inspected
type Config struct {
	SkipImports   bool // do not extract imports from the logic region
	LexicalImport bool // match imports lexically instead of parsing the logic region
}

// DefaultConfig returns inspection defaults
func DefaultConfig() *Config {
	return &Config{}
}

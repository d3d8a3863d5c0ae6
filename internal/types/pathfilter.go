package types

// PathFilterConfig contains configuration for the path filter.
type PathFilterConfig struct {
	IgnoredPatterns   []string `json:"ignoredPatterns" yaml:"ignored_patterns"`
	AllowedExtensions []string `json:"allowedExtensions" yaml:"allowed_extensions"`
}

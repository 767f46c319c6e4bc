package sorter

// Config holds configuration settings for a Sorter
type Config struct {
	Method  string // algorithm name, see Methods()
	Reverse bool   // sort in the opposite order of the LessFunc
	Unique  bool   // drop consecutive equivalent elements from the output
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		Method:  DefaultMethod,
		Reverse: false,
		Unique:  false,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults.
// The provided config is not modified.
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	merged := *c
	if merged.Method == "" {
		merged.Method = d.Method
	}
	// booleans default to false, nothing to merge
	return &merged
}

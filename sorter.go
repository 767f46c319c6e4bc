package sorter

// Sorter sorts slices of E with a fixed LessFunc and Config.
// A Sorter holds no mutable state and may be used from multiple goroutines.
type Sorter[E any] struct {
	config Config
	method Method
	less   LessFunc[E]
}

// New validates config and returns a Sorter using less as the ordering.
// A nil config uses DefaultConfig(). An unknown Config.Method returns a
// *ConfigError wrapping an *InvalidMethodError.
func New[E any](less LessFunc[E], config *Config) (*Sorter[E], error) {
	c := mergeConfig(config)
	m, err := ParseMethod(c.Method)
	if err != nil {
		return nil, &ConfigError{Field: "Method", Value: c.Method, Reason: err}
	}
	if c.Reverse {
		less = Reverse(less)
	}
	return &Sorter[E]{
		config: *c,
		method: m,
		less:   less,
	}, nil
}

// Method returns the algorithm this Sorter uses
func (s *Sorter[E]) Method() Method {
	return s.method
}

// Less returns the effective ordering, reversed if Config.Reverse was set
func (s *Sorter[E]) Less() LessFunc[E] {
	return s.less
}

// Sort returns a sorted copy of data
func (s *Sorter[E]) Sort(data []E) []E {
	out := SortWith(data, s.less, s.method)
	if s.config.Unique {
		out = Uniq(out, s.less)
	}
	return out
}

package config

// Clone returns a deep copy of the configuration. The clone is value-equal
// to the source but reference-disjoint: every list gets a fresh backing
// array, so mutating one side never affects the other. (Strings are
// immutable in Go, so copying them by value already satisfies the
// no-shared-mutable-storage contract.) Nil-safe.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	dup := *c
	dup.Channels.Passthrough = cloneStrings(c.Channels.Passthrough)
	dup.Plugins.Modules = cloneStrings(c.Plugins.Modules)
	dup.Plugins.Required = cloneStrings(c.Plugins.Required)
	return &dup
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

package config

import (
	"go.uber.org/atomic"
)

// Holder publishes the current configuration to concurrent readers.
// A loaded Config is immutable, so readers may share the pointer freely;
// anything that needs a private mutable copy should Clone what it reads.
// The zero value holds no configuration.
type Holder struct {
	cur atomic.Pointer[Config]
}

// NewHolder returns a Holder publishing cfg.
func NewHolder(cfg *Config) *Holder {
	h := &Holder{}
	h.cur.Store(cfg)
	return h
}

// Current returns the published configuration, or nil if none is set.
func (h *Holder) Current() *Config {
	return h.cur.Load()
}

// Replace publishes cfg and returns the previously published
// configuration, if any. Readers holding the old pointer are unaffected.
func (h *Holder) Replace(cfg *Config) *Config {
	return h.cur.Swap(cfg)
}

package config_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lc/rdgate/internal/config"
)

func TestHolderZeroValue(t *testing.T) {
	var h config.Holder
	assert.Nil(t, h.Current())
}

func TestHolderReplace(t *testing.T) {
	first := loadFull(t)
	second := loadFull(t)

	h := config.NewHolder(first)
	require.Same(t, first, h.Current())

	prev := h.Replace(second)
	assert.Same(t, first, prev)
	assert.Same(t, second, h.Current())
}

// TestHolderConcurrentReaders: many readers share the published pointer
// while a writer swaps it; the race detector keeps this honest.
func TestHolderConcurrentReaders(t *testing.T) {
	cfg := loadFull(t)
	h := config.NewHolder(cfg)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if cur := h.Current(); cur != nil {
					_ = cur.ModuleCount()
				}
			}
		}()
	}
	for i := 0; i < 10; i++ {
		h.Replace(cfg.Clone())
	}
	wg.Wait()
}

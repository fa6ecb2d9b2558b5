package main

import "sync"

// AISearchCache holds the caches shared by every AI player in the process.
// Today that is just the transposition table.
type AISearchCache struct {
	mu sync.Mutex
	tt *TranspositionTable
}

var sharedSearchCache = &AISearchCache{}

func SharedSearchCache() *AISearchCache {
	return sharedSearchCache
}

// ensureTT returns the table to use for a search, creating or resizing it
// from config. Returns nil when the table is disabled.
func ensureTT(cache *AISearchCache, config Config) *TranspositionTable {
	if cache == nil || !config.AiEnableTT {
		return nil
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	size := config.AiTtSize
	if size <= 0 {
		size = 1 << 16
	}
	buckets := config.AiTtBuckets
	if buckets <= 0 {
		buckets = 2
	}
	if cache.tt == nil || cache.tt.Capacity() != int(nextPowerOfTwo(uint64(size)))*buckets {
		cache.tt = NewTranspositionTable(uint64(size), buckets)
	}
	return cache.tt
}

func (c *AISearchCache) Table() *TranspositionTable {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tt
}

func (c *AISearchCache) NextGeneration() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tt != nil {
		c.tt.NextGeneration()
	}
}

func TranspositionSize(cache *AISearchCache) int {
	if cache == nil {
		return 0
	}
	tt := cache.Table()
	if tt == nil {
		return 0
	}
	return tt.Count()
}

// FlushGlobalCaches drops everything cached across searches. Called when the
// config changes, since entries computed under one evaluation function are
// meaningless under another.
func FlushGlobalCaches() {
	cache := SharedSearchCache()
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cache.tt != nil {
		cache.tt.Clear()
	}
}

package main

import (
	"math"
	"sync"
	"testing"
)

func mixKey(seed uint64) uint64 {
	rng := splitmix64{state: seed}
	return rng.next()
}

func TestTTConcurrentProbeStore(t *testing.T) {
	tt := NewTranspositionTable(1<<12, 2)
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			for i := 0; i < 4000; i++ {
				key := mixKey(seed ^ uint64(i))
				depth := (i % 8) + 1
				move := Move{X: i % 7, Y: (i / 7) % 7}
				tt.Store(key, depth, float64(i), TTExact, move)
				tt.Probe(key)
				tt.Probe(key ^ 0x9e3779b97f4a7c15)
			}
		}(uint64(g + 1))
	}

	wg.Wait()
	if tt.Count() == 0 {
		t.Fatalf("expected TT to contain entries after concurrent traffic")
	}
}

func TestTTGenerationWrapStaysNonZero(t *testing.T) {
	tt := NewTranspositionTable(16, 1)
	tt.gen.Store(^uint32(0))
	tt.NextGeneration()
	if got := tt.Generation(); got == 0 {
		t.Fatalf("generation must never be zero")
	}
}

func TestTTStoreProbeRoundtrip(t *testing.T) {
	tt := NewTranspositionTable(64, 2)
	key := mixKey(123)
	move := Move{X: 3, Y: 4}
	tt.Store(key, 5, math.Inf(1), TTExact, move)

	entry, ok := tt.Probe(key)
	if !ok {
		t.Fatalf("expected stored entry to be found")
	}
	if entry.Depth != 5 || entry.Flag != TTExact || !entry.BestMove.Equals(move) {
		t.Fatalf("entry fields corrupted: %+v", entry)
	}
	if !math.IsInf(entry.Score, 1) {
		t.Fatalf("infinite scores must survive the roundtrip, got %v", entry.Score)
	}
	if _, ok := tt.Probe(key ^ 1); ok {
		t.Fatalf("probe must not match a different key")
	}
}

func TestTTDeeperEntryReplacesShallower(t *testing.T) {
	tt := NewTranspositionTable(8, 1)
	key := mixKey(7)
	tt.Store(key, 2, 1.0, TTExact, Move{X: 1, Y: 1})
	tt.Store(key, 4, 2.0, TTExact, Move{X: 2, Y: 2})

	entry, ok := tt.Probe(key)
	if !ok {
		t.Fatalf("expected entry")
	}
	if entry.Depth != 4 || entry.Score != 2.0 {
		t.Fatalf("deeper search should replace shallower entry, got %+v", entry)
	}

	// A shallower store must not clobber the deeper one.
	tt.Store(key, 1, 3.0, TTExact, Move{X: 3, Y: 3})
	entry, _ = tt.Probe(key)
	if entry.Depth != 4 {
		t.Fatalf("shallower store clobbered deeper entry: %+v", entry)
	}
}

func TestTTExactPreferredOverBoundAtSameDepth(t *testing.T) {
	tt := NewTranspositionTable(8, 1)
	key := mixKey(11)
	tt.Store(key, 3, 1.0, TTLower, Move{X: 1, Y: 1})
	tt.Store(key, 3, 2.0, TTExact, Move{X: 2, Y: 2})

	entry, ok := tt.Probe(key)
	if !ok {
		t.Fatalf("expected entry")
	}
	if entry.Flag != TTExact || entry.Score != 2.0 {
		t.Fatalf("exact entry should win at equal depth, got %+v", entry)
	}
}

func TestTTClear(t *testing.T) {
	tt := NewTranspositionTable(64, 2)
	for i := 0; i < 32; i++ {
		tt.Store(mixKey(uint64(i)), 1, float64(i), TTExact, Move{X: i % 7, Y: i % 5})
	}
	if tt.Count() == 0 {
		t.Fatalf("expected entries before clear")
	}
	tt.Clear()
	if tt.Count() != 0 {
		t.Fatalf("expected empty table after clear, got %d", tt.Count())
	}
}

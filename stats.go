package main

import (
	"fmt"
	"strings"
	"time"
)

// SearchStats accumulates counters for one top-level search invocation.
// Not safe for concurrent use; parallel root workers get their own copy,
// merged after the join.
type SearchStats struct {
	Start           time.Time
	Nodes           int64
	Evaluations     int64
	ABCutoffs       int64
	TTProbes        int64
	TTHits          int64
	TTCutoffs       int64
	TTStores        int64
	CompletedDepths int
	DepthDurations  []time.Duration
}

func (s *SearchStats) Merge(other *SearchStats) {
	if other == nil {
		return
	}
	s.Nodes += other.Nodes
	s.Evaluations += other.Evaluations
	s.ABCutoffs += other.ABCutoffs
	s.TTProbes += other.TTProbes
	s.TTHits += other.TTHits
	s.TTCutoffs += other.TTCutoffs
	s.TTStores += other.TTStores
}

func logSearchStats(tag string, stats *SearchStats) {
	if stats == nil {
		return
	}
	elapsed := time.Duration(0)
	if !stats.Start.IsZero() {
		elapsed = time.Since(stats.Start)
	} else {
		for _, d := range stats.DepthDurations {
			elapsed += d
		}
	}
	nps := 0.0
	if elapsed > 0 {
		nps = float64(stats.Nodes) / elapsed.Seconds()
	}
	ttHitRate := 0.0
	if stats.TTProbes > 0 {
		ttHitRate = float64(stats.TTHits) * 100.0 / float64(stats.TTProbes)
	}
	parts := make([]string, 0, len(stats.DepthDurations))
	for _, d := range stats.DepthDurations {
		parts = append(parts, fmt.Sprintf("%dms", d.Milliseconds()))
	}
	fmt.Printf("[ai:%s] t=%dms completed=%d nodes=%d evals=%d nps=%.0f ab_cutoff=%d tt_probe=%d tt_hit=%d tt_hit_rate=%.1f%% tt_cutoff=%d tt_store=%d depth_times=[%s]\n",
		tag,
		elapsed.Milliseconds(),
		stats.CompletedDepths,
		stats.Nodes,
		stats.Evaluations,
		nps,
		stats.ABCutoffs,
		stats.TTProbes,
		stats.TTHits,
		ttHitRate,
		stats.TTCutoffs,
		stats.TTStores,
		strings.Join(parts, ","),
	)
}

package main

import (
	"math"
	"sync"
)

type rootMoveScore struct {
	score float64
	err   error
}

// searchRootParallel splits the root moves across workers, each searching
// its successors with a full window on an independently cloned state. The
// merge keeps the best score at the lowest root index, so the chosen move is
// the one the sequential search would have picked among equals. A pure
// optimization: observable results match the single-threaded search.
func searchRootParallel(state GameState, ctx *searchContext, depth int, workers int) (SearchResult, error) {
	moves := ctx.rules.LegalMoves(state, state.ToMove)
	if len(moves) == 0 {
		return SearchResult{Score: ctx.evaluate(state), Move: NoMove()}, nil
	}
	if workers > len(moves) {
		workers = len(moves)
	}

	results := make([]rootMoveScore, len(moves))
	workerStats := make([]*SearchStats, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		stats := &SearchStats{}
		workerStats[w] = stats
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			workerCtx := *ctx
			workerCtx.stats = stats
			for i := w; i < len(moves); i += workers {
				next, err := workerCtx.rules.ApplyMove(state.Clone(), moves[i])
				if err != nil {
					results[i] = rootMoveScore{err: err}
					return
				}
				child, err := alphabeta(next, &workerCtx, depth-1, math.Inf(-1), math.Inf(1), false)
				if err != nil {
					results[i] = rootMoveScore{err: err}
					return
				}
				results[i] = rootMoveScore{score: child.Score}
			}
		}(w)
	}
	wg.Wait()

	if ctx.stats != nil {
		for _, stats := range workerStats {
			ctx.stats.Merge(stats)
		}
	}

	best := SearchResult{Move: NoMove()}
	haveBest := false
	for i, result := range results {
		if result.err != nil {
			return SearchResult{}, result.err
		}
		if !haveBest || result.score > best.Score {
			best = SearchResult{Score: result.score, Move: moves[i]}
			haveBest = true
		}
	}
	return best, nil
}

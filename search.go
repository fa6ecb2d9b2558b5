package main

import (
	"errors"
	"math"
	"time"
)

// ErrSearchTimeout unwinds a search that ran past its deadline. It is
// control flow, not a user-visible failure: only the iterative deepening
// driver consumes it, and never lets a partial depth masquerade as a
// completed one.
var ErrSearchTimeout = errors.New("search timeout")

// SearchResult pairs a score with the move that produced it. The move is
// NoMove at evaluated leaves and when the searched position has no children.
type SearchResult struct {
	Score float64
	Move  Move
}

type SearchSettings struct {
	MaxDepth    int
	Eval        EvalFunc
	TT          *TranspositionTable
	Stats       *SearchStats
	ShouldStop  func() bool
	RootWorkers int
}

type searchContext struct {
	rules       Rules
	eval        EvalFunc
	player      PlayerID
	deadline    time.Time
	hasDeadline bool
	shouldStop  func() bool
	stats       *SearchStats
	tt          *TranspositionTable
}

func newSearchContext(rules Rules, player PlayerID, settings SearchSettings) searchContext {
	eval := settings.Eval
	if eval == nil {
		eval = MobilityScore
	}
	return searchContext{
		rules:      rules,
		eval:       eval,
		player:     player,
		shouldStop: settings.ShouldStop,
		stats:      settings.Stats,
		tt:         settings.TT,
	}
}

func timedOut(ctx *searchContext) bool {
	if ctx.shouldStop != nil && ctx.shouldStop() {
		return true
	}
	return ctx.hasDeadline && time.Now().After(ctx.deadline)
}

func (ctx *searchContext) evaluate(state GameState) float64 {
	if ctx.stats != nil {
		ctx.stats.Evaluations++
	}
	return ctx.eval(state, ctx.rules, ctx.player)
}

// Minimax runs an exhaustive fixed-depth search for the side to move in
// state. It is the correctness baseline: AlphaBeta must return the identical
// (score, move) pair for the same state and depth.
func Minimax(state GameState, rules Rules, depth int, settings SearchSettings) (SearchResult, error) {
	ctx := newSearchContext(rules, state.ToMove, settings)
	return minimax(state, &ctx, depth, true)
}

func minimax(state GameState, ctx *searchContext, depth int, maximizing bool) (SearchResult, error) {
	if ctx.stats != nil {
		ctx.stats.Nodes++
	}
	if timedOut(ctx) {
		return SearchResult{}, ErrSearchTimeout
	}
	moves := ctx.rules.LegalMoves(state, state.ToMove)
	if depth <= 0 || len(moves) == 0 {
		return SearchResult{Score: ctx.evaluate(state), Move: NoMove()}, nil
	}

	best := SearchResult{Move: NoMove()}
	haveBest := false
	for _, move := range moves {
		next, err := ctx.rules.ApplyMove(state, move)
		if err != nil {
			return SearchResult{}, err
		}
		child, err := minimax(next, ctx, depth-1, !maximizing)
		if err != nil {
			return SearchResult{}, err
		}
		// Strict comparisons keep the first move seen among equals.
		if !haveBest || (maximizing && child.Score > best.Score) || (!maximizing && child.Score < best.Score) {
			best = SearchResult{Score: child.Score, Move: move}
			haveBest = true
		}
	}
	return best, nil
}

// AlphaBeta runs a depth-limited search with alpha-beta pruning over a full
// window. Pruning only skips subtrees that cannot affect the result one
// level up; the returned pair matches Minimax exactly, only the node count
// differs.
func AlphaBeta(state GameState, rules Rules, depth int, settings SearchSettings) (SearchResult, error) {
	ctx := newSearchContext(rules, state.ToMove, settings)
	return alphabeta(state, &ctx, depth, math.Inf(-1), math.Inf(1), true)
}

func alphabeta(state GameState, ctx *searchContext, depth int, alpha, beta float64, maximizing bool) (SearchResult, error) {
	if ctx.stats != nil {
		ctx.stats.Nodes++
	}
	if timedOut(ctx) {
		return SearchResult{}, ErrSearchTimeout
	}
	moves := ctx.rules.LegalMoves(state, state.ToMove)
	if depth <= 0 || len(moves) == 0 {
		return SearchResult{Score: ctx.evaluate(state), Move: NoMove()}, nil
	}

	alphaOrig := alpha
	betaOrig := beta
	if ctx.tt != nil {
		if ctx.stats != nil {
			ctx.stats.TTProbes++
		}
		if entry, ok := ctx.tt.Probe(state.Hash); ok && entry.Depth >= depth {
			if ctx.stats != nil {
				ctx.stats.TTHits++
			}
			// Bounds only; candidate enumeration order is never touched.
			switch entry.Flag {
			case TTExact:
				if ctx.stats != nil {
					ctx.stats.TTCutoffs++
				}
				return SearchResult{Score: entry.Score, Move: entry.BestMove}, nil
			case TTLower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case TTUpper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				if ctx.stats != nil {
					ctx.stats.TTCutoffs++
				}
				return SearchResult{Score: entry.Score, Move: entry.BestMove}, nil
			}
		}
	}

	best := SearchResult{Move: NoMove()}
	haveBest := false
	for _, move := range moves {
		next, err := ctx.rules.ApplyMove(state, move)
		if err != nil {
			return SearchResult{}, err
		}
		child, err := alphabeta(next, ctx, depth-1, alpha, beta, !maximizing)
		if err != nil {
			return SearchResult{}, err
		}
		if !haveBest || (maximizing && child.Score > best.Score) || (!maximizing && child.Score < best.Score) {
			best = SearchResult{Score: child.Score, Move: move}
			haveBest = true
		}
		if maximizing {
			if best.Score > alpha {
				alpha = best.Score
			}
		} else {
			if best.Score < beta {
				beta = best.Score
			}
		}
		if alpha >= beta {
			if ctx.stats != nil {
				ctx.stats.ABCutoffs++
			}
			break
		}
	}

	if ctx.tt != nil {
		flag := TTExact
		if best.Score <= alphaOrig {
			flag = TTUpper
		} else if best.Score >= betaOrig {
			flag = TTLower
		}
		ctx.tt.Store(state.Hash, depth, best.Score, flag, best.Move)
		if ctx.stats != nil {
			ctx.stats.TTStores++
		}
	}
	return best, nil
}

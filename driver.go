package main

import (
	"errors"
	"math"
	"time"
)

// ErrGameOver is returned by GetMove when the supplied state has already
// been decided; everything else GetMove handles by itself.
var ErrGameOver = errors.New("game already decided")

// GetMove selects a move for the side to move by iterative deepening:
// alpha-beta at depth 1, 2, 3, ... until the deadline, keeping the move from
// the deepest fully completed round. Time pressure never fails the call —
// if even depth 1 cannot finish, any legal root move is returned; the NoMove
// sentinel is returned exactly when the root has no legal moves.
func GetMove(state GameState, rules Rules, deadline time.Time, settings SearchSettings) (Move, error) {
	if _, won := state.Winner(); won {
		return NoMove(), ErrGameOver
	}

	legal := rules.LegalMoves(state, state.ToMove)
	if len(legal) == 0 {
		return NoMove(), nil
	}

	// Opening book: the very first placement goes to the center.
	if !state.IsPlaced(Player1) && !state.IsPlaced(Player2) {
		center := Move{X: state.Board.Width() / 2, Y: state.Board.Height() / 2}
		if state.Board.IsOpen(center.X, center.Y) {
			center.Depth = 0
			return center, nil
		}
	}

	ctx := newSearchContext(rules, state.ToMove, settings)
	if !deadline.IsZero() {
		ctx.deadline = deadline
		ctx.hasDeadline = true
	}

	// The tree is at most one ply per open cell deep; searching beyond that
	// repeats the same exhaustive result.
	maxDepth := state.Board.CountOpen()
	if settings.MaxDepth > 0 && settings.MaxDepth < maxDepth {
		maxDepth = settings.MaxDepth
	}

	best := NoMove()
	for depth := 1; depth <= maxDepth; depth++ {
		depthStart := time.Now()
		var result SearchResult
		var err error
		if settings.RootWorkers > 1 && len(legal) > 1 {
			result, err = searchRootParallel(state, &ctx, depth, settings.RootWorkers)
		} else {
			result, err = alphabeta(state, &ctx, depth, math.Inf(-1), math.Inf(1), true)
		}
		if err != nil {
			if errors.Is(err, ErrSearchTimeout) {
				// The interrupted depth is discarded; best still holds the
				// deepest completed round.
				break
			}
			return NoMove(), err
		}
		best = result.Move
		best.Depth = depth
		if ctx.stats != nil {
			ctx.stats.CompletedDepths = depth
			ctx.stats.DepthDurations = append(ctx.stats.DepthDurations, time.Since(depthStart))
		}
		if math.IsInf(result.Score, 0) {
			// Outcome proven; deeper rounds cannot change it.
			break
		}
	}

	if best.IsNone() {
		fallback := legal[0]
		fallback.Depth = 0
		return fallback, nil
	}
	return best, nil
}

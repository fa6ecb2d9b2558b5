package main

import "math"

// EvalFunc scores a state from the perspective of one player. Positive is
// good for that player. Implementations must return a finite value for any
// non-terminal state and must not fail; terminal states score ±Inf so they
// dominate every heuristic comparison at any depth.
type EvalFunc func(state GameState, rules Rules, player PlayerID) float64

const (
	EvalMobility         = "mobility"
	EvalMobilityRatio    = "mobility_ratio"
	EvalLogMobilityRatio = "log_mobility_ratio"
	EvalWeightedMobility = "weighted_mobility"
)

// terminalScore resolves states where the active player is out of moves.
func terminalScore(state GameState, rules Rules, player PlayerID) (float64, bool) {
	if winner, ok := state.Winner(); ok {
		if winner == player {
			return math.Inf(1), true
		}
		return math.Inf(-1), true
	}
	if len(rules.LegalMoves(state, state.ToMove)) == 0 {
		if state.ToMove == player {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	return 0, false
}

// MobilityScore is the difference between the two players' move counts.
func MobilityScore(state GameState, rules Rules, player PlayerID) float64 {
	if score, done := terminalScore(state, rules, player); done {
		return score
	}
	own := len(rules.LegalMoves(state, player))
	opp := len(rules.LegalMoves(state, otherPlayer(player)))
	return float64(own - opp)
}

// MobilityRatioScore prefers states where the mobility gap is widest in
// relative terms; it saturates to ±Inf when either side is immobilized.
func MobilityRatioScore(state GameState, rules Rules, player PlayerID) float64 {
	if score, done := terminalScore(state, rules, player); done {
		return score
	}
	own := len(rules.LegalMoves(state, player))
	opp := len(rules.LegalMoves(state, otherPlayer(player)))
	if opp == 0 {
		return math.Inf(1)
	}
	if own == 0 {
		return math.Inf(-1)
	}
	return float64(own) / float64(opp)
}

// LogMobilityRatioScore compresses the ratio onto a symmetric scale: 0 when
// even, negative when behind.
func LogMobilityRatioScore(state GameState, rules Rules, player PlayerID) float64 {
	if score, done := terminalScore(state, rules, player); done {
		return score
	}
	own := len(rules.LegalMoves(state, player))
	opp := len(rules.LegalMoves(state, otherPlayer(player)))
	if opp == 0 {
		return math.Inf(1)
	}
	if own == 0 {
		return math.Inf(-1)
	}
	return math.Log(float64(own) / float64(opp))
}

// WeightedMobility builds a tunable variant: weighted move-count difference
// with a pull toward the board center.
func WeightedMobility(weights HeuristicConfig) EvalFunc {
	return func(state GameState, rules Rules, player PlayerID) float64 {
		if score, done := terminalScore(state, rules, player); done {
			return score
		}
		own := len(rules.LegalMoves(state, player))
		opp := len(rules.LegalMoves(state, otherPlayer(player)))
		score := weights.OwnMobility*float64(own) - weights.OppMobility*float64(opp)
		if weights.CenterPull != 0 && state.IsPlaced(player) {
			pos := state.Position(player)
			cx := float64(state.Board.Width()-1) / 2
			cy := float64(state.Board.Height()-1) / 2
			dist := math.Hypot(float64(pos.X)-cx, float64(pos.Y)-cy)
			score -= weights.CenterPull * dist
		}
		return score
	}
}

func resolveEvalFunc(config Config) EvalFunc {
	switch config.AiEvalFunc {
	case EvalMobilityRatio:
		return MobilityRatioScore
	case EvalLogMobilityRatio:
		return LogMobilityRatioScore
	case EvalWeightedMobility:
		return WeightedMobility(config.Heuristics)
	default:
		return MobilityScore
	}
}

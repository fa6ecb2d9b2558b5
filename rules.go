package main

import (
	"errors"
	"fmt"
)

// ErrIllegalMove signals a caller/integration bug: a move outside
// LegalMoves was applied. It is never retried.
var ErrIllegalMove = errors.New("illegal move")

// knightOffsets is the movement pattern, in its fixed enumeration order.
// The order is load-bearing: all search tie-breaks resolve to the first
// move emitted here.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

type Rules struct {
	width  int
	height int
}

func NewRules(settings GameSettings) Rules {
	return Rules{width: settings.BoardWidth, height: settings.BoardHeight}
}

// LegalMoves enumerates the moves available to player, in a deterministic
// order: before the player is placed, every open cell row-major; afterwards
// the knight offsets from the current position in table order.
func (r Rules) LegalMoves(state GameState, player PlayerID) []Move {
	if !state.IsPlaced(player) {
		moves := make([]Move, 0, state.Board.CountOpen())
		for y := 0; y < r.height; y++ {
			for x := 0; x < r.width; x++ {
				if state.Board.IsOpen(x, y) {
					moves = append(moves, Move{X: x, Y: y})
				}
			}
		}
		return moves
	}
	pos := state.Position(player)
	moves := make([]Move, 0, len(knightOffsets))
	for _, offset := range knightOffsets {
		x := pos.X + offset[0]
		y := pos.Y + offset[1]
		if state.Board.IsOpen(x, y) {
			moves = append(moves, Move{X: x, Y: y})
		}
	}
	return moves
}

func (r Rules) IsLegal(state GameState, move Move, player PlayerID) bool {
	if !move.IsValid(r.width, r.height) || !state.Board.IsOpen(move.X, move.Y) {
		return false
	}
	if !state.IsPlaced(player) {
		return true
	}
	pos := state.Position(player)
	dx := move.X - pos.X
	dy := move.Y - pos.Y
	for _, offset := range knightOffsets {
		if dx == offset[0] && dy == offset[1] {
			return true
		}
	}
	return false
}

// ApplyMove produces the successor of state with move played by the side to
// move. The input state is left untouched; sibling branches of a search stay
// independent. Fails with ErrIllegalMove when the move is not in
// LegalMoves(state, state.ToMove).
func (r Rules) ApplyMove(state GameState, move Move) (GameState, error) {
	player := state.ToMove
	if !r.IsLegal(state, move, player) {
		return GameState{}, fmt.Errorf("%w: (%d,%d) for player %d", ErrIllegalMove, move.X, move.Y, int(player)+1)
	}
	next := state.Clone()
	prev := next.Positions[player]
	next.Positions[player] = Move{X: move.X, Y: move.Y}
	next.Board.Block(move.X, move.Y)
	next.LastMove = Move{X: move.X, Y: move.Y}
	next.HasLastMove = true
	next.LastMessage = ""
	next.ToMove = otherPlayer(player)
	UpdateHashAfterMove(&next, move, player, prev)

	if len(r.LegalMoves(next, next.ToMove)) == 0 {
		next.Status = wonStatus(player)
	} else if next.Status == StatusNotStarted {
		next.Status = StatusRunning
	}
	return next, nil
}

// IsTerminal reports whether the active player has no legal move.
func (r Rules) IsTerminal(state GameState) bool {
	return len(r.LegalMoves(state, state.ToMove)) == 0
}

func (r Rules) ActivePlayer(state GameState) PlayerID {
	return state.ToMove
}

package main

import (
	"math/rand"
	"testing"
)

func TestIncrementalHashMatchesRecompute(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	rules := NewRules(testSettings(5, 5))
	state := runningState(5, 5)
	for ply := 0; ply < 12; ply++ {
		moves := rules.LegalMoves(state, state.ToMove)
		if len(moves) == 0 {
			break
		}
		next, err := rules.ApplyMove(state, moves[rng.Intn(len(moves))])
		if err != nil {
			t.Fatalf("ply %d: %v", ply, err)
		}
		if got, want := next.Hash, ComputeHash(next); got != want {
			t.Fatalf("ply %d: incremental hash %d, recompute %d", ply, got, want)
		}
		state = next
		if state.Status != StatusRunning {
			break
		}
	}
}

func TestHashDistinguishesSideToMove(t *testing.T) {
	state := runningState(5, 5)
	state.Positions[Player1] = Move{X: 1, Y: 1}
	state.Board.Block(1, 1)
	state.recomputeHash()

	flipped := state.Clone()
	flipped.ToMove = otherPlayer(flipped.ToMove)
	flipped.recomputeHash()
	if state.Hash == flipped.Hash {
		t.Fatalf("expected hash to differ for different side to move")
	}
}

func TestHashDistinguishesPiecePositions(t *testing.T) {
	a := runningState(5, 5)
	a.Positions[Player1] = Move{X: 1, Y: 1}
	a.Board.Block(1, 1)
	a.recomputeHash()

	// Same blocked cell, but the piece standing on it belongs to the other
	// player.
	b := runningState(5, 5)
	b.Positions[Player2] = Move{X: 1, Y: 1}
	b.Board.Block(1, 1)
	b.recomputeHash()
	if a.Hash == b.Hash {
		t.Fatalf("expected hash to depend on which player occupies a cell")
	}
}

func TestZobristTableReusedPerBoardSize(t *testing.T) {
	if GetZobrist(5, 5) != GetZobrist(5, 5) {
		t.Fatalf("expected the same table for repeated lookups")
	}
	if GetZobrist(5, 5) == GetZobrist(7, 7) {
		t.Fatalf("expected distinct tables for distinct board sizes")
	}
}

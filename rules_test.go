package main

import (
	"errors"
	"testing"
)

func TestLegalMovesPlacementRowMajor(t *testing.T) {
	rules := NewRules(testSettings(3, 3))
	state := runningState(3, 3)
	moves := rules.LegalMoves(state, Player1)
	if len(moves) != 9 {
		t.Fatalf("expected every open cell as a placement, got %d moves", len(moves))
	}
	idx := 0
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if moves[idx].X != x || moves[idx].Y != y {
				t.Fatalf("placement order broken at %d: got %+v, want (%d,%d)", idx, moves[idx], x, y)
			}
			idx++
		}
	}
}

func TestLegalMovesKnightOffsetsInTableOrder(t *testing.T) {
	rules := NewRules(testSettings(5, 5))
	state := runningState(5, 5)
	state.Positions[Player1] = Move{X: 2, Y: 2}
	state.Board.Block(2, 2)
	state.recomputeHash()

	want := []Move{
		{X: 0, Y: 1}, {X: 0, Y: 3},
		{X: 1, Y: 0}, {X: 1, Y: 4},
		{X: 3, Y: 0}, {X: 3, Y: 4},
		{X: 4, Y: 1}, {X: 4, Y: 3},
	}
	moves := rules.LegalMoves(state, Player1)
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if !moves[i].Equals(want[i]) {
			t.Fatalf("move %d: got %+v, want %+v", i, moves[i], want[i])
		}
	}
}

func TestLegalMovesSkipsBlockedAndOffBoard(t *testing.T) {
	rules := NewRules(testSettings(5, 5))
	state := runningState(5, 5)
	state.Positions[Player1] = Move{X: 0, Y: 0}
	state.Board.Block(0, 0)
	state.Board.Block(1, 2)
	state.recomputeHash()

	moves := rules.LegalMoves(state, Player1)
	if len(moves) != 1 || !moves[0].Equals(Move{X: 2, Y: 1}) {
		t.Fatalf("corner with one escape: got %+v", moves)
	}
}

func TestApplyMoveRejectsIllegal(t *testing.T) {
	rules := NewRules(testSettings(5, 5))
	state := runningState(5, 5)
	state.Positions[Player1] = Move{X: 2, Y: 2}
	state.Board.Block(2, 2)
	state.recomputeHash()

	if _, err := rules.ApplyMove(state, Move{X: 2, Y: 3}); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("non-knight step: got %v, want ErrIllegalMove", err)
	}
	if _, err := rules.ApplyMove(state, Move{X: -1, Y: 0}); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("off-board move: got %v, want ErrIllegalMove", err)
	}
}

func TestApplyMoveLeavesInputUntouched(t *testing.T) {
	rules := NewRules(testSettings(5, 5))
	state := runningState(5, 5)
	state.Positions[Player1] = Move{X: 2, Y: 2}
	state.Board.Block(2, 2)
	state.recomputeHash()
	before := state.Clone()

	next, err := rules.ApplyMove(state, Move{X: 0, Y: 1})
	if err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}
	if state.Hash != before.Hash || state.ToMove != before.ToMove {
		t.Fatalf("ApplyMove mutated its input")
	}
	if state.Board.At(0, 1) != CellOpen {
		t.Fatalf("ApplyMove blocked a cell on the input board")
	}
	if next.Board.At(0, 1) != CellBlocked {
		t.Fatalf("successor should block the destination cell")
	}
	if next.ToMove != Player2 {
		t.Fatalf("successor should flip the side to move")
	}
}

func TestApplyMoveMarksWin(t *testing.T) {
	state, rules := trapState()
	next, err := rules.ApplyMove(state, Move{X: 2, Y: 1})
	if err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}
	if next.Status != StatusPlayer1Won {
		t.Fatalf("stranding the opponent should decide the game, status %v", next.Status)
	}
	if !rules.IsTerminal(next) {
		t.Fatalf("decided position should be terminal for the side to move")
	}
	if winner, ok := next.Winner(); !ok || winner != Player1 {
		t.Fatalf("winner should be Player1, got %v ok=%v", winner, ok)
	}
}

func TestPlacementMayUseAnyOpenCell(t *testing.T) {
	rules := NewRules(testSettings(5, 5))
	state := runningState(5, 5)
	state.Positions[Player1] = Move{X: 2, Y: 2}
	state.Board.Block(2, 2)
	state.ToMove = Player2
	state.recomputeHash()

	// Player2 is unplaced: a cell far outside knight range is still legal.
	next, err := rules.ApplyMove(state, Move{X: 4, Y: 4})
	if err != nil {
		t.Fatalf("placement rejected: %v", err)
	}
	if !next.Position(Player2).Equals(Move{X: 4, Y: 4}) {
		t.Fatalf("placement did not set the piece position")
	}
	// Occupied cells are not placement targets.
	state2 := runningState(5, 5)
	state2.Positions[Player1] = Move{X: 2, Y: 2}
	state2.Board.Block(2, 2)
	state2.ToMove = Player2
	state2.recomputeHash()
	if _, err := rules.ApplyMove(state2, Move{X: 2, Y: 2}); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("placing on a blocked cell: got %v, want ErrIllegalMove", err)
	}
}

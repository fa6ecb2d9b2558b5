package main

import (
	"errors"
	"testing"
	"time"
)

func TestGetMoveOpeningBookCenter(t *testing.T) {
	rules := NewRules(testSettings(7, 7))
	state := runningState(7, 7)
	move, err := GetMove(state, rules, time.Time{}, SearchSettings{MaxDepth: 2})
	if err != nil {
		t.Fatalf("GetMove failed: %v", err)
	}
	if move.X != 3 || move.Y != 3 {
		t.Fatalf("first placement should go to the center, got %+v", move)
	}
}

func TestGetMoveExpiredDeadlineStillLegal(t *testing.T) {
	rules := NewRules(testSettings(5, 5))
	state := runningState(5, 5)
	state.Positions[Player1] = Move{X: 2, Y: 2}
	state.Positions[Player2] = Move{X: 0, Y: 0}
	state.Board.Block(2, 2)
	state.Board.Block(0, 0)
	state.recomputeHash()

	move, err := GetMove(state, rules, time.Now().Add(-time.Second), SearchSettings{})
	if err != nil {
		t.Fatalf("GetMove failed: %v", err)
	}
	if move.IsNone() {
		t.Fatalf("expected a legal fallback move, got the no-move sentinel")
	}
	if !rules.IsLegal(state, move, state.ToMove) {
		t.Fatalf("fallback move %+v is not legal", move)
	}
	if move.Depth != 0 {
		t.Fatalf("fallback move should report depth 0, got %d", move.Depth)
	}
}

func TestGetMoveNoLegalMoves(t *testing.T) {
	rules := NewRules(testSettings(3, 3))
	state := runningState(3, 3)
	// Player2 at (0,2) with both knight escapes blocked.
	state.Positions[Player2] = Move{X: 0, Y: 2}
	state.ToMove = Player2
	state.Board.Block(0, 2)
	state.Board.Block(1, 0)
	state.Board.Block(2, 1)
	state.recomputeHash()

	move, err := GetMove(state, rules, time.Time{}, SearchSettings{})
	if err != nil {
		t.Fatalf("GetMove failed: %v", err)
	}
	if !move.IsNone() {
		t.Fatalf("expected no-move sentinel for a moveless root, got %+v", move)
	}
}

func TestGetMoveDecidedGame(t *testing.T) {
	rules := NewRules(testSettings(3, 3))
	state := runningState(3, 3)
	state.Status = StatusPlayer1Won
	if _, err := GetMove(state, rules, time.Time{}, SearchSettings{}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("got %v, want ErrGameOver", err)
	}
}

func TestGetMoveKeepsDeepestCompletedRound(t *testing.T) {
	state, rules := trapState()
	move, err := GetMove(state, rules, time.Now().Add(time.Second), SearchSettings{})
	if err != nil {
		t.Fatalf("GetMove failed: %v", err)
	}
	if move.X != 2 || move.Y != 1 {
		t.Fatalf("expected winning move (2,1), got %+v", move)
	}
	// The outcome is proven at depth 1; deeper rounds are skipped.
	if move.Depth != 1 {
		t.Fatalf("expected search to stop after depth 1, reported depth %d", move.Depth)
	}
}

func TestGetMoveRespectsDeadline(t *testing.T) {
	rules := NewRules(testSettings(7, 7))
	state := runningState(7, 7)
	state.Positions[Player1] = Move{X: 3, Y: 3}
	state.Positions[Player2] = Move{X: 0, Y: 0}
	state.Board.Block(3, 3)
	state.Board.Block(0, 0)
	state.recomputeHash()

	budget := 100 * time.Millisecond
	start := time.Now()
	move, err := GetMove(state, rules, start.Add(budget), SearchSettings{})
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("GetMove failed: %v", err)
	}
	if move.IsNone() {
		t.Fatalf("expected a move under time pressure")
	}
	if elapsed > 10*budget {
		t.Fatalf("search ran far past its deadline: %v", elapsed)
	}
}

func TestGetMoveRootParallelMatchesSequential(t *testing.T) {
	state, rules, ok := randomPosition(t, testRNG(31), 5, 5, 4)
	if !ok {
		t.Fatalf("random position ended prematurely")
	}
	sequential, err := GetMove(state, rules, time.Time{}, SearchSettings{MaxDepth: 4})
	if err != nil {
		t.Fatalf("sequential GetMove failed: %v", err)
	}
	parallel, err := GetMove(state, rules, time.Time{}, SearchSettings{MaxDepth: 4, RootWorkers: 4})
	if err != nil {
		t.Fatalf("parallel GetMove failed: %v", err)
	}
	if !sequential.Equals(parallel) {
		t.Fatalf("parallel root split changed the result: sequential=%+v parallel=%+v", sequential, parallel)
	}
}

func TestGetMoveRecordsDepthStats(t *testing.T) {
	state, rules, ok := randomPosition(t, testRNG(5), 4, 4, 3)
	if !ok {
		t.Fatalf("random position ended prematurely")
	}
	stats := &SearchStats{Start: time.Now()}
	if _, err := GetMove(state, rules, time.Time{}, SearchSettings{MaxDepth: 3, Stats: stats}); err != nil {
		t.Fatalf("GetMove failed: %v", err)
	}
	if stats.CompletedDepths == 0 {
		t.Fatalf("expected at least one completed depth")
	}
	if len(stats.DepthDurations) != stats.CompletedDepths {
		t.Fatalf("depth durations (%d) out of sync with completed depths (%d)",
			len(stats.DepthDurations), stats.CompletedDepths)
	}
	if stats.Nodes == 0 {
		t.Fatalf("expected visited nodes to be counted")
	}
}

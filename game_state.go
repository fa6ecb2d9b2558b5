package main

type PlayerID int

type GameStatus int

const (
	Player1 PlayerID = iota
	Player2
)

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusPlayer1Won
	StatusPlayer2Won
)

// GameState is an immutable snapshot from the search's point of view: the
// engines never mutate one in place, every branch receives a fresh successor
// from Rules.ApplyMove.
type GameState struct {
	Board       Board
	Positions   [2]Move
	ToMove      PlayerID
	Status      GameStatus
	HasLastMove bool
	LastMove    Move
	Hash        uint64
	LastMessage string
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = NewBoard(settings.BoardWidth, settings.BoardHeight)
	s.Positions = [2]Move{NoMove(), NoMove()}
	if settings.Player1Starts {
		s.ToMove = Player1
	} else {
		s.ToMove = Player2
	}
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = NoMove()
	s.LastMessage = ""
	s.recomputeHash()
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	return clone
}

func (s GameState) Position(player PlayerID) Move {
	return s.Positions[player]
}

func (s GameState) IsPlaced(player PlayerID) bool {
	return !s.Positions[player].IsNone()
}

func (s GameState) Winner() (PlayerID, bool) {
	switch s.Status {
	case StatusPlayer1Won:
		return Player1, true
	case StatusPlayer2Won:
		return Player2, true
	}
	return Player1, false
}

func otherPlayer(player PlayerID) PlayerID {
	if player == Player1 {
		return Player2
	}
	return Player1
}

func wonStatus(player PlayerID) GameStatus {
	if player == Player1 {
		return StatusPlayer1Won
	}
	return StatusPlayer2Won
}

func (s *GameState) recomputeHash() {
	s.Hash = ComputeHash(*s)
}

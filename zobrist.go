package main

import "sync"

type ZobristTable struct {
	width   int
	height  int
	blocked []uint64
	pos     [2][]uint64
	side    uint64
}

type zobristStore struct {
	mu     sync.Mutex
	tables map[[2]int]*ZobristTable
}

var zobristTables = &zobristStore{tables: make(map[[2]int]*ZobristTable)}

func GetZobrist(width, height int) *ZobristTable {
	zobristTables.mu.Lock()
	defer zobristTables.mu.Unlock()
	key := [2]int{width, height}
	if table, ok := zobristTables.tables[key]; ok {
		return table
	}
	rng := splitmix64{state: uint64(0x9e3779b97f4a7c15) ^ (uint64(width)<<32 | uint64(height))}
	cells := width * height
	table := &ZobristTable{width: width, height: height, blocked: make([]uint64, cells)}
	for i := range table.blocked {
		table.blocked[i] = rng.next()
	}
	for p := 0; p < 2; p++ {
		table.pos[p] = make([]uint64, cells)
		for i := range table.pos[p] {
			table.pos[p][i] = rng.next()
		}
	}
	table.side = rng.next()
	zobristTables.tables[key] = table
	return table
}

func (z *ZobristTable) blockedKey(x, y int) uint64 {
	return z.blocked[y*z.width+x]
}

func (z *ZobristTable) posKey(player PlayerID, x, y int) uint64 {
	return z.pos[player][y*z.width+x]
}

func ComputeHash(state GameState) uint64 {
	z := GetZobrist(state.Board.Width(), state.Board.Height())
	var hash uint64
	for y := 0; y < state.Board.Height(); y++ {
		for x := 0; x < state.Board.Width(); x++ {
			if state.Board.At(x, y) == CellBlocked {
				hash ^= z.blockedKey(x, y)
			}
		}
	}
	for _, player := range []PlayerID{Player1, Player2} {
		if state.IsPlaced(player) {
			pos := state.Position(player)
			hash ^= z.posKey(player, pos.X, pos.Y)
		}
	}
	if state.ToMove == Player2 {
		hash ^= z.side
	}
	return hash
}

// UpdateHashAfterMove folds one applied move into state.Hash incrementally.
// prev is the mover's position before the move (NoMove when this was the
// placement move).
func UpdateHashAfterMove(state *GameState, move Move, player PlayerID, prev Move) {
	z := GetZobrist(state.Board.Width(), state.Board.Height())
	hash := state.Hash
	hash ^= z.blockedKey(move.X, move.Y)
	if !prev.IsNone() {
		hash ^= z.posKey(player, prev.X, prev.Y)
	}
	hash ^= z.posKey(player, move.X, move.Y)
	hash ^= z.side
	state.Hash = hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

package main

// Move is a board coordinate. The sentinel NoMove (-1,-1) means "no legal
// move"; it is a valid return value, not an error.
type Move struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Depth int `json:"depth,omitempty"`
}

func NoMove() Move {
	return Move{X: -1, Y: -1}
}

func NewMove(x, y int) Move {
	return Move{X: x, Y: y}
}

func (m Move) IsNone() bool {
	return m.X < 0 || m.Y < 0
}

func (m Move) IsValid(width, height int) bool {
	return m.X >= 0 && m.Y >= 0 && m.X < width && m.Y < height
}

func (m Move) Equals(other Move) bool {
	return m.X == other.X && m.Y == other.Y
}

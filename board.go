package main

type Cell int

const (
	CellOpen Cell = iota
	CellBlocked
)

type Board struct {
	width  int
	height int
	cells  []Cell
}

func NewBoard(width, height int) Board {
	b := Board{}
	b.Reset(width, height)
	return b
}

func (b *Board) Reset(width, height int) {
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
}

func (b Board) At(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

func (b *Board) Block(x, y int) {
	b.cells[b.index(x, y)] = CellBlocked
}

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b Board) IsOpen(x, y int) bool {
	return b.InBounds(x, y) && b.At(x, y) == CellOpen
}

func (b Board) CountOpen() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellOpen {
			count++
		}
	}
	return count
}

func (b Board) Width() int {
	return b.width
}

func (b Board) Height() int {
	return b.height
}

func (b Board) Clone() Board {
	clone := Board{width: b.width, height: b.height}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func (b Board) index(x, y int) int {
	return y*b.width + x
}

func (c Cell) String() string {
	if c == CellBlocked {
		return "Blocked"
	}
	return "Open"
}

package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

type GameSettings struct {
	BoardWidth    int        `json:"board_width"`
	BoardHeight   int        `json:"board_height"`
	Player1Type   PlayerType `json:"-"`
	Player2Type   PlayerType `json:"-"`
	Player1Starts bool       `json:"player1_starts"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardWidth:    7,
		BoardHeight:   7,
		Player1Type:   PlayerHuman,
		Player2Type:   PlayerAI,
		Player1Starts: true,
	}
}

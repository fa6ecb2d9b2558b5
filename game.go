package main

import (
	"log"
	"time"
)

type Game struct {
	settings  GameSettings
	rules     Rules
	state     GameState
	history   MoveHistory
	player1   IPlayer
	player2   IPlayer
	turnStart time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.stopAIPlayers()
	g.settings = settings
	g.rules = NewRules(settings)
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
	g.logMatchup()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()
	mover := g.state.ToMove
	next, err := g.rules.ApplyMove(g.state, move)
	if err != nil {
		g.state.LastMessage = "Illegal move: " + err.Error()
		return false, g.state.LastMessage
	}
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	g.state = next
	g.state.LastMessage = ""
	g.history.Push(HistoryEntry{
		Move:      move,
		Player:    mover,
		ElapsedMs: elapsedMs,
		IsAi:      isAiMove,
		Depth:     move.Depth,
	})
	log.Printf("[game] player %d plays (%d,%d) in %.0fms", int(mover)+1, move.X, move.Y, elapsedMs)
	if winner, ok := g.state.Winner(); ok {
		log.Printf("[game] player %d wins: opponent has no moves", int(winner)+1)
	}
	g.turnStart = time.Now()
	g.notifyAiCaches()
	return true, ""
}

func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			move := human.TakePendingMove()
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		return false
	}
	ai, ok := player.(*AIPlayer)
	if ok {
		if ai.HasMoveReady() {
			move := ai.TakeMove()
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		if !ai.IsThinking() {
			ai.StartThinking(g.state.Clone(), g.rules)
		}
		return false
	}
	move := player.ChooseMove(g.state.Clone(), g.rules)
	applied, _ := g.TryApplyMove(move)
	return applied
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) AiThinking() bool {
	ai, ok := g.currentPlayer().(*AIPlayer)
	if ok {
		return ai.IsThinking()
	}
	return false
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerFor(g.state.ToMove)
}

func (g *Game) playerFor(id PlayerID) IPlayer {
	if id == Player1 {
		return g.player1
	}
	return g.player2
}

func (g *Game) createPlayers() {
	if g.settings.Player1Type == PlayerHuman {
		g.player1 = NewHumanPlayer()
	} else {
		g.player1 = NewAIPlayer()
	}
	if g.settings.Player2Type == PlayerHuman {
		g.player2 = NewHumanPlayer()
	} else {
		g.player2 = NewAIPlayer()
	}
}

func (g *Game) notifyAiCaches() {
	if ai, ok := g.player1.(*AIPlayer); ok {
		ai.OnMoveApplied(g.state, g.rules)
	}
	if ai, ok := g.player2.(*AIPlayer); ok {
		ai.OnMoveApplied(g.state, g.rules)
	}
}

func (g *Game) stopAIPlayers() {
	if ai, ok := g.player1.(*AIPlayer); ok {
		ai.StopThinking()
	}
	if ai, ok := g.player2.(*AIPlayer); ok {
		ai.StopThinking()
	}
}

func (g *Game) ResetForConfigChange() {
	if ai, ok := g.player1.(*AIPlayer); ok {
		ai.ResetForConfigChange()
	}
	if ai, ok := g.player2.(*AIPlayer); ok {
		ai.ResetForConfigChange()
	}
}

func (g *Game) logMatchup() {
	label := func(t PlayerType) string {
		if t == PlayerAI {
			return "AI"
		}
		return "Human"
	}
	log.Printf("[game] new %dx%d game: Player1 (%s) vs Player2 (%s)",
		g.settings.BoardWidth, g.settings.BoardHeight,
		label(g.settings.Player1Type), label(g.settings.Player2Type))
}

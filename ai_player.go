package main

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

type AIPlayer struct {
	moveMutex  sync.Mutex
	workerDone chan struct{}
	thinking   atomic.Bool
	moveReady  atomic.Bool
	stopSignal atomic.Bool
	readyMove  Move
}

func NewAIPlayer() *AIPlayer {
	return &AIPlayer{}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

// ChooseMove runs a full deadline-bounded search synchronously.
func (a *AIPlayer) ChooseMove(state GameState, rules Rules) Move {
	config := GetConfig()
	stats := &SearchStats{Start: time.Now()}
	move, err := GetMove(state, rules, searchDeadline(config), searchSettings(config, stats, nil))
	if err != nil {
		log.Printf("[ai] search failed: %v", err)
		return NoMove()
	}
	if config.AiLogSearchStats {
		logSearchStats("choose", stats)
	}
	return move
}

// StartThinking launches the search on a worker goroutine; the game loop
// polls HasMoveReady and collects the move with TakeMove.
func (a *AIPlayer) StartThinking(state GameState, rules Rules) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.moveReady.Store(false)
	a.stopSignal.Store(false)

	stateCopy := state.Clone()
	rulesCopy := rules
	done := make(chan struct{})
	a.workerDone = done
	config := GetConfig()
	go func() {
		defer close(done)
		stats := &SearchStats{Start: time.Now()}
		settings := searchSettings(config, stats, func() bool { return a.stopSignal.Load() })
		move, err := GetMove(stateCopy, rulesCopy, searchDeadline(config), settings)
		if a.stopSignal.Load() {
			a.moveReady.Store(false)
			a.thinking.Store(false)
			return
		}
		if err != nil {
			log.Printf("[ai] search failed: %v", err)
			move = NoMove()
		}
		if config.AiLogSearchStats {
			logSearchStats("think", stats)
		}
		a.moveMutex.Lock()
		a.readyMove = move
		a.moveMutex.Unlock()
		a.moveReady.Store(true)
		a.thinking.Store(false)
	}()
}

func (a *AIPlayer) StopThinking() {
	a.stopSignal.Store(true)
}

func (a *AIPlayer) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIPlayer) HasMoveReady() bool {
	return a.moveReady.Load()
}

func (a *AIPlayer) TakeMove() Move {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	a.moveReady.Store(false)
	return a.readyMove
}

// OnMoveApplied ages the shared transposition table so stale entries lose
// out to fresh ones in replacement.
func (a *AIPlayer) OnMoveApplied(GameState, Rules) {
	SharedSearchCache().NextGeneration()
}

func (a *AIPlayer) CacheSize() int {
	return TranspositionSize(SharedSearchCache())
}

func (a *AIPlayer) ResetForConfigChange() {
	a.stopSignal.Store(true)
	FlushGlobalCaches()
}

func searchDeadline(config Config) time.Time {
	if config.AiTimeBudgetMs <= 0 {
		return time.Time{}
	}
	return time.Now().Add(time.Duration(config.AiTimeBudgetMs) * time.Millisecond)
}

func searchSettings(config Config, stats *SearchStats, shouldStop func() bool) SearchSettings {
	return SearchSettings{
		MaxDepth:    config.AiMaxDepth,
		Eval:        resolveEvalFunc(config),
		TT:          ensureTT(SharedSearchCache(), config),
		Stats:       stats,
		ShouldStop:  shouldStop,
		RootWorkers: config.AiRootWorkers,
	}
}

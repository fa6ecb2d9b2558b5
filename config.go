package main

import "sync"

type Config struct {
	AiMaxDepth       int             `json:"ai_max_depth"`
	AiTimeBudgetMs   int             `json:"ai_time_budget_ms"`
	AiEvalFunc       string          `json:"ai_eval_func"`
	AiEnableTT       bool            `json:"ai_enable_tt"`
	AiTtSize         int             `json:"ai_tt_size"`
	AiTtBuckets      int             `json:"ai_tt_buckets"`
	AiRootWorkers    int             `json:"ai_root_workers"`
	AiLogSearchStats bool            `json:"ai_log_search_stats"`
	Heuristics       HeuristicConfig `json:"heuristics"`
}

type HeuristicConfig struct {
	OwnMobility float64 `json:"own_mobility"`
	OppMobility float64 `json:"opp_mobility"`
	CenterPull  float64 `json:"center_pull"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		// Depth cap 0 lets the driver run until the deadline or the tree
		// bottoms out.
		AiMaxDepth:     0,
		AiTimeBudgetMs: 150,

		AiEvalFunc: EvalMobility,

		// Cross-round caching is an opt-in; the baseline searches every
		// depth from scratch.
		AiEnableTT:  false,
		AiTtSize:    1 << 16,
		AiTtBuckets: 4,

		AiRootWorkers: 1,

		AiLogSearchStats: false,

		Heuristics: HeuristicConfig{
			OwnMobility: 1.0,
			OppMobility: 2.0,
			CenterPull:  0.5,
		},
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}

package txs

import "runtime"

// Config is the configuration of the transaction intake.
type Config struct {
	// Workers bounds the number of transactions decoded and verified in parallel by HandleBatch.
	Workers int `mapstructure:"workers"`
	// SeenCacheSize is the number of recently accepted transaction ids kept to detect duplicates.
	SeenCacheSize int `mapstructure:"seen-cache-size"`
	// TickWindow is how many ticks ahead of the current tick a transaction may target.
	// Zero disables the check.
	TickWindow uint32 `mapstructure:"tick-window"`
	// RateLimit bounds accepted intake to this many transactions per second.
	// Zero disables the limit.
	RateLimit float64 `mapstructure:"rate-limit"`
	// RateBurst is the number of transactions admitted at once when RateLimit is set.
	RateBurst int `mapstructure:"rate-burst"`
}

// DefaultConfig returns the default intake configuration.
func DefaultConfig() Config {
	return Config{
		Workers:       runtime.NumCPU(),
		SeenCacheSize: 1 << 16,
		TickWindow:    0,
		RateLimit:     0,
		RateBurst:     1024,
	}
}

package contract

// Config sizes the action log of contract procedure invocations.
type Config struct {
	MaxActions int `mapstructure:"max-actions"`
}

// DefaultConfig returns the default tracker configuration.
func DefaultConfig() Config {
	return Config{MaxActions: DefaultMaxActions}
}

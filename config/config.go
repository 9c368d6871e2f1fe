// Package config contains the configuration of the ledger core components.
package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/tickledger/go-tickledger/contract"
	"github.com/tickledger/go-tickledger/txs"
)

const defaultConfigFileName = "./config.toml"

// Config defines the top level configuration.
type Config struct {
	Tracker contract.Config `mapstructure:"tracker"`
	TXS     txs.Config      `mapstructure:"txs"`
	LOGGING LoggerConfig    `mapstructure:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Tracker: contract.DefaultConfig(),
		TXS:     txs.DefaultConfig(),
		LOGGING: defaultLoggingConfig(),
	}
}

// Validate checks values that would make components misbehave.
func (cfg *Config) Validate() error {
	if cfg.Tracker.MaxActions <= 0 {
		return fmt.Errorf("tracker max-actions must be positive, got %d", cfg.Tracker.MaxActions)
	}
	if cfg.TXS.SeenCacheSize <= 0 {
		return fmt.Errorf("txs seen-cache-size must be positive, got %d", cfg.TXS.SeenCacheSize)
	}
	if cfg.TXS.Workers < 0 {
		return fmt.Errorf("txs workers must not be negative, got %d", cfg.TXS.Workers)
	}
	if cfg.TXS.RateLimit < 0 {
		return fmt.Errorf("txs rate-limit must not be negative, got %v", cfg.TXS.RateLimit)
	}
	return nil
}

// LoadConfig reads the config file into vip. An empty location means the default file.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		fileLocation = defaultConfigFileName
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %w", err)
	}
	return nil
}

// Load reads the config file on top of the defaults.
func Load(fileLocation string) (Config, error) {
	return LoadFs(afero.NewOsFs(), fileLocation)
}

// LoadFs is Load that reads the file from fs.
func LoadFs(fs afero.Fs, fileLocation string) (Config, error) {
	vip := viper.New()
	vip.SetFs(fs)
	if err := LoadConfig(fileLocation, vip); err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := vip.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

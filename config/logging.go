package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	defaultLoggingLevel = zapcore.InfoLevel
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = "console"
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = "json"
)

// Module logger names.
const (
	TxsLogger      = "txs"
	ContractLogger = "contract"
)

// LoggerConfig holds the logging level for each module.
type LoggerConfig struct {
	Encoder             LogEncoder    `mapstructure:"log-encoder"`
	AppLoggerLevel      zapcore.Level `mapstructure:"app"`
	TxsLoggerLevel      zapcore.Level `mapstructure:"txs"`
	ContractLoggerLevel zapcore.Level `mapstructure:"contract"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:             ConsoleLogEncoder,
		AppLoggerLevel:      defaultLoggingLevel,
		TxsLoggerLevel:      defaultLoggingLevel,
		ContractLoggerLevel: defaultLoggingLevel,
	}
}

// NewLogger builds the root logger for the configured encoder.
func (cfg LoggerConfig) NewLogger() (*zap.Logger, error) {
	var zcfg zap.Config
	switch cfg.Encoder {
	case JSONLogEncoder:
		zcfg = zap.NewProductionConfig()
	case ConsoleLogEncoder, "":
		zcfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log encoder %q", cfg.Encoder)
	}
	zcfg.Level = zap.NewAtomicLevelAt(cfg.AppLoggerLevel)
	return zcfg.Build()
}

// Named returns a child logger for module with its own level, which can only
// raise the root level, never lower it.
func Named(root *zap.Logger, module string, level zapcore.Level) *zap.Logger {
	return root.Named(module).WithOptions(zap.IncreaseLevel(level))
}

// ModuleLogger returns the named child of root at the level configured for module.
// Unknown modules use the app level.
func (cfg LoggerConfig) ModuleLogger(root *zap.Logger, module string) *zap.Logger {
	level := cfg.AppLoggerLevel
	switch module {
	case TxsLogger:
		level = cfg.TxsLoggerLevel
	case ContractLogger:
		level = cfg.ContractLoggerLevel
	}
	return Named(root, module, level)
}

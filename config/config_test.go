package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tickledger/go-tickledger/contract"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	vip := viper.New()
	err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), vip)
	require.ErrorContains(t, err, "failed to read config file")
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[tracker]
max-actions = 16

[txs]
workers = 2
seen-cache-size = 128
tick-window = 10

[logging]
log-encoder = "json"
txs = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.Tracker.MaxActions)
	require.Equal(t, 2, cfg.TXS.Workers)
	require.Equal(t, 128, cfg.TXS.SeenCacheSize)
	require.EqualValues(t, 10, cfg.TXS.TickWindow)
	require.Equal(t, JSONLogEncoder, cfg.LOGGING.Encoder)
	require.Equal(t, zapcore.DebugLevel, cfg.LOGGING.TxsLoggerLevel)
	require.Equal(t, zapcore.InfoLevel, cfg.LOGGING.ContractLoggerLevel)
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[txs]\nworkers = 3\n"))
	require.NoError(t, err)
	require.Equal(t, contract.DefaultMaxActions, cfg.Tracker.MaxActions)
	require.Equal(t, 3, cfg.TXS.Workers)
	require.Equal(t, DefaultConfig().TXS.SeenCacheSize, cfg.TXS.SeenCacheSize)
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "[tracker]\nmax-actions = 0\n"))
	require.ErrorContains(t, err, "max-actions")
}

func TestNewLogger(t *testing.T) {
	cfg := defaultLoggingConfig()
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	require.NotNil(t, Named(logger, "txs", cfg.TxsLoggerLevel))

	cfg.Encoder = "xml"
	_, err = cfg.NewLogger()
	require.Error(t, err)
}

func TestLoadFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/tickledger/config.toml", []byte(`
[tracker]
max-actions = 8

[logging]
contract = "warn"
`), 0o600))

	cfg, err := LoadFs(fs, "/etc/tickledger/config.toml")
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Tracker.MaxActions)
	require.Equal(t, zapcore.WarnLevel, cfg.LOGGING.ContractLoggerLevel)

	tracker := contract.NewActionTrackerFromConfig(cfg.Tracker)
	require.Equal(t, 8, tracker.Cap())

	_, err = LoadFs(fs, "/etc/tickledger/missing.toml")
	require.ErrorContains(t, err, "failed to read config file")
}

func TestModuleLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	root := zap.New(core)
	cfg := defaultLoggingConfig()
	cfg.ContractLoggerLevel = zapcore.WarnLevel
	cfg.TxsLoggerLevel = zapcore.DebugLevel

	contractLogger := cfg.ModuleLogger(root, ContractLogger)
	contractLogger.Info("dropped")
	contractLogger.Warn("kept")
	cfg.ModuleLogger(root, TxsLogger).Debug("txs debug")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Equal(t, "kept", entries[0].Message)
	require.Equal(t, ContractLogger, entries[0].LoggerName)
	require.Equal(t, "txs debug", entries[1].Message)
	require.Equal(t, TxsLogger, entries[1].LoggerName)
}

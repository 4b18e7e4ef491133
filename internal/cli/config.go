package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ambiyansyah-risyal/anuvada"
)

const appName = "anuvada"

var validLogLevels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

const validLogLevelsStr = "debug|error|info|warn"

// Config is the resolved command line configuration.
type Config struct {
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	LogLevel       string        `mapstructure:"log_level"`
	HistoryBackend string        `mapstructure:"history"`
	HistoryPath    string        `mapstructure:"history_path"`
}

// LoadConfig reads flags, environment and config file values from v.
func LoadConfig(v *viper.Viper) Config {
	return Config{
		BaseURL:        v.GetString("base-url"),
		Timeout:        v.GetDuration("timeout"),
		LogLevel:       v.GetString("log-level"),
		HistoryBackend: v.GetString("history"),
		HistoryPath:    v.GetString("history-path"),
	}
}

func (c Config) Validate() error {
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid base-url %q, expected scheme://host[:port]", c.BaseURL)
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be greater than 0")
	}
	if _, ok := validLogLevels[c.LogLevel]; !ok {
		return fmt.Errorf("invalid log level: %s. valid levels: %s", c.LogLevel, validLogLevelsStr)
	}
	switch c.HistoryBackend {
	case "file", "sqlite", "memory":
	default:
		return fmt.Errorf("invalid history backend %q, expected file|sqlite|memory", c.HistoryBackend)
	}
	return nil
}

// historyLocation returns the directory (file) or database path (sqlite).
func (c Config) historyLocation() (string, error) {
	if c.HistoryPath != "" {
		return c.HistoryPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	dir := filepath.Join(home, "."+appName)
	if c.HistoryBackend == "sqlite" {
		return filepath.Join(dir, "history.db"), nil
	}
	return dir, nil
}

func initConfig(v *viper.Viper) {
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/." + appName)
	v.AddConfigPath("/etc/" + appName)

	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(validLogLevels[level])
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func clientOptions(cfg Config, logger *zap.Logger) []anuvada.Option {
	opts := []anuvada.Option{
		anuvada.WithTimeout(cfg.Timeout),
		anuvada.WithHeader("User-Agent", anuvada.UserAgent()),
	}
	if cfg.LogLevel == "debug" {
		opts = append(opts, anuvada.WithZapLogger(logger))
	}
	return opts
}

// Package cli implements the anuvada command line front end.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ambiyansyah-risyal/anuvada"
	"github.com/ambiyansyah-risyal/anuvada/history"
)

// app holds what a subcommand needs once flags are resolved.
type app struct {
	cfg     Config
	v       *viper.Viper
	logger  *zap.Logger
	client  *anuvada.Client
	history *history.History
	closers []io.Closer
}

func (a *app) Close() {
	if a.client != nil {
		a.client.WaitNotifications()
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// NewRootCmd builds the command tree on its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	a := &app{v: v}

	root := &cobra.Command{
		Use:           appName,
		Short:         "English to Kannada translator client",
		Long:          `Translate English text to Kannada through the translator API and keep a short local history.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.String("base-url", anuvada.DefaultBaseURL, "translator API base address")
	flags.Duration("timeout", anuvada.DefaultTimeout, "per-request timeout")
	flags.StringP("log-level", "l", "info", fmt.Sprintf("set log level (%s)", validLogLevelsStr))
	flags.String("history", "file", "history backend (file|sqlite|memory)")
	flags.String("history-path", "", "history directory (file) or database (sqlite); defaults under $HOME/.anuvada")
	if err := v.BindPFlags(flags); err != nil {
		slog.Error("Failed to bind root flags", "error", err)
	}
	initConfig(v)

	root.AddCommand(
		newTranslateCmd(a),
		newBatchCmd(a),
		newSpeakCmd(a),
		newHealthCmd(a),
		newInfoCmd(a),
		newHistoryCmd(a),
		newStubCmd(a),
		newVersionCmd(),
	)

	return root
}

// setupBase resolves configuration and the logger.
func (a *app) setupBase() error {
	configErr := a.v.ReadInConfig()

	cfg := LoadConfig(a.v)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.logger = logger
	if configErr == nil {
		logger.Debug("Using config file", zap.String("file", a.v.ConfigFileUsed()))
	}
	return nil
}

// setup additionally builds the API client and opens the history.
func (a *app) setup() error {
	if err := a.setupBase(); err != nil {
		return err
	}
	cfg, logger := a.cfg, a.logger

	a.client = anuvada.New(cfg.BaseURL, clientOptions(cfg, logger)...)
	if err := a.client.ValidationError(); err != nil {
		return err
	}

	store, closer, err := openHistoryStore(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	a.history = history.New(store)

	logger.Debug("Client configured", zap.String("baseURL", a.client.BaseURL()),
		zap.Duration("timeout", a.client.Timeout()), zap.String("history", cfg.HistoryBackend))
	return nil
}

func openHistoryStore(cfg Config) (history.Store, io.Closer, error) {
	if cfg.HistoryBackend == "memory" {
		return history.NewMemoryStore(), nil, nil
	}

	location, err := cfg.historyLocation()
	if err != nil {
		return nil, nil, err
	}

	switch cfg.HistoryBackend {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(location), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create history directory: %w", err)
		}
		store, err := history.OpenSQLiteStore(location)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		store, err := history.NewFileStore(location)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}
}

// Execute runs the command line and exits with status 1 on error.
func Execute() {
	_ = godotenv.Load()

	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

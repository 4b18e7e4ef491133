package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ambiyansyah-risyal/anuvada/internal/stubapi"
)

func newStubCmd(a *app) *cobra.Command {
	var (
		listen       string
		fixturesPath string
		latency      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Serve a local stand-in for the translator API",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupBase()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fixtures := stubapi.DefaultFixtures()
			if fixturesPath != "" {
				loaded, err := stubapi.LoadFixtures(fixturesPath)
				if err != nil {
					return err
				}
				fixtures = loaded
			}

			stub := stubapi.New(fixtures, stubapi.WithLatency(latency))
			srv := &http.Server{
				Addr:              listen,
				Handler:           stub.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			rootCtx, rootCancel := context.WithCancel(cmd.Context())
			defer rootCancel()
			handleInterrupt(a.logger, rootCancel)

			serverErr := make(chan error, 1)
			go func() {
				a.logger.Info("Serving stub API", zap.String("address", listen), zap.Int("phrases", len(fixtures.Phrases)))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			select {
			case err, ok := <-serverErr:
				if ok {
					return fmt.Errorf("stub server failed: %w", err)
				}
				return nil
			case <-rootCtx.Done():
				a.logger.Info("Shutdown signal received, initiating graceful shutdown...")
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					a.logger.Error("Error during graceful shutdown of stub server", zap.Error(err))
					return err
				}
				a.logger.Info("Stub server has shut down.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:5000", "address to listen on")
	cmd.Flags().StringVar(&fixturesPath, "fixtures", "", "YAML file with a phrases map")
	cmd.Flags().DurationVar(&latency, "latency", 0, "artificial delay before every answer")
	return cmd
}

// handleInterrupt cancels on SIGINT or SIGTERM.
func handleInterrupt(logger *zap.Logger, cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logger.Info("Received interrupt signal, shutting down...")
		cancel()
	}()
}

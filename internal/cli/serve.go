package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lexicloud/internal/api"
	"github.com/matzehuels/lexicloud/pkg/history"
	"github.com/matzehuels/lexicloud/pkg/service"
)

// shutdownGrace bounds how long in-flight requests get on shutdown.
const shutdownGrace = 10 * time.Second

// serveCommand creates the "serve" command: run the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the lexicloud HTTP API",
		Long: `Starts the HTTP API for message ingestion, place registration, word-cloud
rendering, and emoji leaderboards. Configuration is read from a TOML file;
--addr overrides the configured listen address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := service.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = service.LoadConfig(configPath); err != nil {
					return err
				}
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			opts := []service.Option{service.WithLogger(c.Logger)}
			if cfg.History.MongoURI != "" {
				src, err := history.NewMongoSource(cmd.Context(), history.MongoConfig{
					URI:        cfg.History.MongoURI,
					Database:   cfg.History.Database,
					Collection: cfg.History.Collection,
				})
				if err != nil {
					return err
				}
				opts = append(opts, service.WithHistory(src))
				c.Logger.Info("message archive connected")
			}

			svc, err := service.New(cfg, opts...)
			if err != nil {
				return err
			}
			return c.runServer(cmd.Context(), cfg.HTTP.Addr, svc)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// runServer serves the API until ctx is cancelled, then drains in-flight
// requests and closes the service.
func (c *CLI) runServer(ctx context.Context, addr string, svc *service.Service) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: api.NewServer(svc, c.Logger),
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return svc.Close(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

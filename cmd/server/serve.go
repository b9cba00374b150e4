package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/h809829-coder/agrosmart/database"
	"github.com/h809829-coder/agrosmart/pkg/app"
	"github.com/h809829-coder/agrosmart/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(f *rootFlags) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, db, err := bootstrap(ctx, f)
			if err != nil {
				return err
			}
			defer func() {
				if err := database.Close(db); err != nil {
					logger.Errorf(context.Background(), "close database: %v", err)
				}
				logger.Sync()
			}()
			if port != "" {
				cfg.Port = port
			}
			if cfg.EphemeralSecret {
				logger.Warnf(ctx, "AUTH_SECRET is empty; sessions will not survive a restart")
			}

			core, seeded, err := app.NewCore(ctx, db)
			if err != nil {
				return err
			}
			if seeded > 0 {
				logger.Infof(ctx, "seeded %d crop profiles", seeded)
			}
			e, err := app.NewHTTP(ctx, cfg, db, core)
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Infof(ctx, "listening on :%s", cfg.Port)
				if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				logger.Infof(ctx, "shutting down")
				sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return e.Shutdown(sctx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

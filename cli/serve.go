package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Cleawwy/Project-Omega/handlers"
	"github.com/Cleawwy/Project-Omega/logging"
)

const shutdownTimeout = 10 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var addr, adminAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the routing API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				c.cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("admin-addr") {
				c.cfg.Server.AdminAddr = adminAddr
			}
			return c.serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "public listen address, overrides server.addr")
	cmd.Flags().StringVar(&adminAddr, "admin-addr", "", "admin listen address, empty disables it")

	return cmd
}

// serve runs the public and admin listeners until ctx is cancelled, then
// shuts both down gracefully.
func (c *CLI) serve(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	cfg := c.cfg

	g, err := c.loadGraph(ctx)
	if err != nil {
		return err
	}
	rs, err := c.newService(g)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	router := handlers.NewRouter(handlers.NewRoutingHandler(rs), handlers.RouterConfig{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.Server.GetRequestTimeout(),
		Logger:         logger,
	})

	servers := []*http.Server{{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.GetReadTimeout(),
		WriteTimeout: cfg.Server.GetWriteTimeout(),
	}}
	if cfg.Server.AdminAddr != "" {
		servers = append(servers, &http.Server{
			Addr:         cfg.Server.AdminAddr,
			Handler:      handlers.NewAdminRouter(handlers.NewAdminHandler(g)),
			ReadTimeout:  cfg.Server.GetReadTimeout(),
			WriteTimeout: cfg.Server.GetWriteTimeout(),
		})
	}

	grp, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		grp.Go(func() error {
			logger.Info("Listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server on %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	grp.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	return grp.Wait()
}

package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"portfolio-cms/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.db.Close()

		if a.cfg.Log.Level != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}

		srv := &http.Server{
			Addr:         ":" + a.cfg.Server.Port,
			Handler:      routes.NewHandler(a.svcs, a.cfg, a.log, a.db.HealthCheck),
			ReadTimeout:  a.cfg.Server.ReadTimeout,
			WriteTimeout: a.cfg.Server.WriteTimeout,
			IdleTimeout:  a.cfg.Server.ReadTimeout,
		}

		serveErr := make(chan error, 1)
		go func() {
			a.log.Info().Str("port", a.cfg.Server.Port).Str("base_url", a.cfg.Site.BaseURL).Msg("Server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-serveErr:
			return err
		case <-quit:
		}
		a.log.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}

		a.log.Info().Msg("Server exited gracefully")
		return nil
	},
}

package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	landing "github.com/medconnect/landing"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().String("render", "", "default render mode: client or ssr")
	cmd.Flags().Bool("dev", false, "dev mode: live assets, no-cache headers, error details")
	cmd.Flags().Duration("cache-ttl", 0, "page cache lifetime (default 5m, 0 disables)")
	return cmd
}

func newApp() (*landing.App, error) {
	opts := []landing.Option{
		landing.WithDev(cfg.Dev),
		landing.WithRenderMode(cfg.Render),
		landing.WithCacheTTL(cfg.CacheTTL),
		landing.WithAssetsDir(cfg.AssetsDir),
		landing.WithLogger(logger),
	}
	if !cfg.Dev {
		opts = append(opts, landing.WithCompression())
	}
	return landing.New(opts...)
}

func serve(ctx context.Context) error {
	app, err := newApp()
	if err != nil {
		out.PrintError("%v", err)
		return err
	}
	defer app.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", cfg.Addr),
			zap.String("mode", cfg.Mode().String()),
			zap.Stringer("render", app.RenderMode()),
			zap.String("assets_version", app.AssetsVersion()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
		return err
	}
	return nil
}

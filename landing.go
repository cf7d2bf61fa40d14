// Package landing serves and exports the MedConnect landing page.
package landing

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/medconnect/landing/internal/adapters/env"
	"github.com/medconnect/landing/internal/adapters/fs"
	httpadapter "github.com/medconnect/landing/internal/adapters/http"
	"github.com/medconnect/landing/internal/assets"
	"github.com/medconnect/landing/internal/core"
	"github.com/medconnect/landing/internal/usecase"
)

type RenderMode = core.RenderMode

const (
	RenderClient = core.RenderClient
	RenderSSR    = core.RenderSSR
)

type ExportResult = usecase.ExportOutput

const DefaultCacheTTL = 5 * time.Minute

type options struct {
	isDev     bool
	render    RenderMode
	cacheTTL  time.Duration
	assetsDir string
	title     string
	compress  bool
	logger    *zap.Logger
}

type Option func(*options)

func WithDev(dev bool) Option {
	return func(o *options) { o.isDev = dev }
}

func WithRenderMode(mode RenderMode) Option {
	return func(o *options) { o.render = mode }
}

// WithCacheTTL sets how long a rendered document is reused. Zero disables
// the cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) { o.cacheTTL = ttl }
}

// WithAssetsDir serves styles.css and motion.js from dir, re-read on every
// request. It only applies in dev mode.
func WithAssetsDir(dir string) Option {
	return func(o *options) { o.assetsDir = dir }
}

func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

func WithCompression() Option {
	return func(o *options) { o.compress = true }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

type App struct {
	pages  *usecase.PageService
	assets *assets.Resolver
	isDev  bool
	opts   options
	logger *zap.Logger
}

func New(opts ...Option) (*App, error) {
	o := options{
		isDev:    env.DetectMode() == core.ModeDev,
		render:   RenderClient,
		cacheTTL: DefaultCacheTTL,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	resolver, err := newResolver(o)
	if err != nil {
		return nil, err
	}

	pages := usecase.NewPageService(resolver, usecase.PageServiceConfig{
		DefaultMode: o.render,
		CacheTTL:    o.cacheTTL,
		Title:       o.title,
		Logger:      o.logger,
	})

	o.logger.Debug("landing app ready",
		zap.Bool("dev", o.isDev),
		zap.Stringer("render", o.render),
		zap.Duration("cache_ttl", o.cacheTTL),
		zap.Bool("live_assets", resolver.Live()),
		zap.String("assets_version", resolver.Manifest().Version),
	)

	return &App{
		pages:  pages,
		assets: resolver,
		isDev:  o.isDev,
		opts:   o,
		logger: o.logger,
	}, nil
}

func newResolver(o options) (*assets.Resolver, error) {
	if o.isDev && o.assetsDir != "" {
		if info, err := os.Stat(o.assetsDir); err == nil && info.IsDir() {
			r, err := assets.NewResolver(fs.NewOSFileSystem(o.assetsDir), true)
			if err != nil {
				return nil, fmt.Errorf("failed to load assets from %s: %w", o.assetsDir, err)
			}
			return r, nil
		}
		o.logger.Warn("assets dir not found, using embedded assets", zap.String("dir", o.assetsDir))
	}

	r, err := assets.NewEmbeddedResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded assets: %w", err)
	}
	return r, nil
}

func (a *App) routerConfig() httpadapter.RouterConfig {
	return httpadapter.RouterConfig{
		Pages:    a.pages,
		Assets:   a.assets,
		IsDev:    a.isDev,
		Logger:   a.logger,
		Compress: a.opts.compress,
	}
}

// Wrap mounts the page, asset and health routes on an existing chi router.
func (a *App) Wrap(r chi.Router) http.Handler {
	if r == nil {
		panic("landing: nil router passed to Wrap; use app.Handler()")
	}
	httpadapter.Routes(r, a.routerConfig())
	return r
}

// Handler returns a standalone router with request IDs, request logging and
// panic recovery.
func (a *App) Handler() http.Handler {
	return httpadapter.NewRouter(a.routerConfig())
}

// Export writes the page and its assets to dir.
func (a *App) Export(ctx context.Context, dir string, render RenderMode) ExportResult {
	svc := usecase.NewExportService(fs.NewOSFileSystem(""), a.pages, a.assets)
	out := svc.ExportStatic(ctx, usecase.ExportInput{OutDir: dir, Render: render})
	if out.Error != nil {
		a.logger.Error("export failed", zap.String("dir", dir), zap.Error(out.Error))
	} else {
		a.logger.Info("export finished", zap.String("dir", dir), zap.Int("files", len(out.Files)))
	}
	return out
}

func (a *App) IsDev() bool {
	return a.isDev
}

func (a *App) RenderMode() RenderMode {
	return a.pages.DefaultMode()
}

func (a *App) AssetsVersion() string {
	return a.assets.Manifest().Version
}

// Stop drops cached documents. The app holds no other resources.
func (a *App) Stop() error {
	a.pages.Invalidate()
	return nil
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/medconnect/landing/internal/assets"
	"github.com/medconnect/landing/internal/usecase"
)

type RouterConfig struct {
	Pages    *usecase.PageService
	Assets   *assets.Resolver
	IsDev    bool
	Logger   *zap.Logger
	Compress bool
}

// Routes mounts the page, asset and health routes onto r.
func Routes(r chi.Router, cfg RouterConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r.Handle("/", NewPageHandler(cfg.Pages, cfg.IsDev, logger))
	assets := NewAssetHandler(cfg.Assets)
	r.Method(http.MethodGet, "/assets/{"+assetFileParam+"}", assets)
	r.Method(http.MethodHead, "/assets/{"+assetFileParam+"}", assets)
	r.Get("/healthz", Health)
}

// NewRouter builds the standalone router with the default middleware stack.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.GetHead)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger, cfg.IsDev))
	if cfg.Compress {
		r.Use(middleware.Compress(5, "text/html", "text/css", "application/javascript"))
	}

	Routes(r, cfg)
	return r
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

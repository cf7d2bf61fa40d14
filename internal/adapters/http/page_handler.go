package http

import (
	"bytes"
	"html"
	"net/http"

	"go.uber.org/zap"

	"github.com/medconnect/landing/internal/core"
	"github.com/medconnect/landing/internal/usecase"
)

const renderQueryParam = "render"

type PageHandler struct {
	service *usecase.PageService
	isDev   bool
	logger  *zap.Logger
}

func NewPageHandler(service *usecase.PageService, isDev bool, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{
		service: service,
		isDev:   isDev,
		logger:  logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	output := h.service.ServePage(req.Context(), usecase.ServePageInput{
		Method:      req.Method,
		RequestPath: req.URL.Path,
		Override:    req.URL.Query().Get(renderQueryParam),
	})

	if output.Error != nil {
		h.logger.Error("page render failed", zap.Error(output.Error), zap.String("path", req.URL.Path))
		h.serveError(w, http.StatusInternalServerError, output.Error)
		return
	}

	switch output.Action {
	case core.ActionNotFound:
		http.NotFound(w, req)

	case core.ActionMethodNotAllowed:
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)

	case core.ActionRenderClientShell, core.ActionRenderSSR:
		h.serveHTML(w, output)
	}
}

func (h *PageHandler) serveHTML(w http.ResponseWriter, output usecase.ServePageOutput) {
	cacheStatus := "MISS"
	if output.Cached {
		cacheStatus = "HIT"
	}

	w.Header().Set("Content-Type", core.GetContentType("index.html"))
	w.Header().Set("X-Render-Mode", output.Render.String())
	w.Header().Set("X-Page-Cache", cacheStatus)
	if h.isDev {
		w.Header().Set("Cache-Control", "no-cache")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(output.HTML)
}

func (h *PageHandler) serveError(w http.ResponseWriter, status int, err error) {
	writeErrorPage(w, status, err, h.isDev)
}

func writeErrorPage(w http.ResponseWriter, status int, err error, isDev bool) {
	data := core.ErrorData{
		Status:  status,
		Title:   http.StatusText(status),
		Message: err.Error(),
		IsDev:   isDev,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}
	_, _ = w.Write(buf.Bytes())
}

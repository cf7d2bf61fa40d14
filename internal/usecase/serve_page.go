package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/medconnect/landing/internal/assets"
	"github.com/medconnect/landing/internal/core"
	"github.com/medconnect/landing/internal/sections"
)

var ErrNoPage = errors.New("page did not mount")

type ServePageInput struct {
	Method      string
	RequestPath string
	Override    string
}

type ServePageOutput struct {
	Action core.PageAction
	Render core.RenderMode
	HTML   []byte
	Cached bool
	Error  error
}

type PageServiceConfig struct {
	DefaultMode core.RenderMode
	// CacheTTL of zero renders every page view from scratch.
	CacheTTL time.Duration
	Title    string
	Logger   *zap.Logger
}

type PageService struct {
	assets      AssetSource
	defaultMode core.RenderMode
	title       string
	cache       *renderCache
	logger      *zap.Logger
}

func NewPageService(source AssetSource, cfg PageServiceConfig) *PageService {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &PageService{
		assets:      source,
		defaultMode: cfg.DefaultMode,
		title:       cfg.Title,
		logger:      logger,
	}
	if cfg.CacheTTL > 0 {
		s.cache = newRenderCache(cfg.CacheTTL)
	}
	return s
}

func (s *PageService) DefaultMode() core.RenderMode {
	return s.defaultMode
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	decision := core.DecidePageAction(core.PageRequest{
		Method:      input.Method,
		RequestPath: input.RequestPath,
		Override:    input.Override,
		DefaultMode: s.defaultMode,
	})

	switch decision.Action {
	case core.ActionNotFound, core.ActionMethodNotAllowed:
		return ServePageOutput{Action: decision.Action}

	case core.ActionRenderClientShell, core.ActionRenderSSR:
		html, cached, err := s.render(ctx, decision.Render)
		return ServePageOutput{
			Action: decision.Action,
			Render: decision.Render,
			HTML:   html,
			Cached: cached,
			Error:  err,
		}

	default:
		return ServePageOutput{
			Action: decision.Action,
			Error:  fmt.Errorf("unknown page action %s", decision.Action),
		}
	}
}

func (s *PageService) render(ctx context.Context, render core.RenderMode) ([]byte, bool, error) {
	key := core.CacheKey(render, s.assets.Manifest().Version)
	if s.cache != nil {
		if html, ok := s.cache.get(key); ok {
			s.logger.Debug("page cache hit", zap.String("key", key))
			return html, true, nil
		}
	}

	html, err := s.RenderDocument(ctx, render)
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		s.cache.set(key, html)
	}
	return html, false, nil
}

// RenderDocument builds a fresh page, mounts it and renders the full
// document for render mode. In client mode the mounted page only ends up in
// the inert template; #app stays empty until the runtime mounts it.
func (s *PageService) RenderDocument(ctx context.Context, render core.RenderMode) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page := sections.NewPage()
	if !page.Mount() || !page.Ready() {
		return nil, ErrNoPage
	}

	var buf bytes.Buffer
	err := core.RenderDocument(&buf, core.Document{
		Title:      s.title,
		StylesHref: s.assets.URL(assets.StylesName),
		ScriptSrc:  s.assets.URL(assets.ScriptName),
		Render:     render,
		Page:       page.Node(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	return buf.Bytes(), nil
}

// Invalidate drops every cached document.
func (s *PageService) Invalidate() {
	if s.cache != nil {
		s.cache.clear()
	}
}

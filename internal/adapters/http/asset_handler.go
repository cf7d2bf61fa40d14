package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/medconnect/landing/internal/assets"
	"github.com/medconnect/landing/internal/core"
)

const assetFileParam = "file"

type AssetHandler struct {
	resolver *assets.Resolver
}

func NewAssetHandler(resolver *assets.Resolver) http.Handler {
	return &AssetHandler{resolver: resolver}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	file := chi.URLParam(req, assetFileParam)
	if file == "" {
		file = strings.TrimPrefix(req.URL.Path, core.AssetsPrefix)
	}

	name, data, err := h.resolver.Open(file)
	if err != nil {
		if errors.Is(err, assets.ErrAssetNotFound) {
			http.NotFound(w, req)
			return
		}
		writeErrorPage(w, http.StatusInternalServerError, err, h.resolver.Live())
		return
	}

	entry := h.resolver.Manifest().Entries[name]
	etag := `"` + entry.Hash + `"`
	if h.resolver.Live() {
		etag = `"` + core.HashContent(data) + `"`
	}

	w.Header().Set("Content-Type", entry.ContentType)
	w.Header().Set("ETag", etag)
	switch {
	case h.resolver.Live():
		w.Header().Set("Cache-Control", "no-cache")
	case file == entry.File:
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	default:
		w.Header().Set("Cache-Control", "public, max-age=300")
	}

	if match := req.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	_, _ = w.Write(data)
}

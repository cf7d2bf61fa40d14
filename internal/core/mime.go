package core

import (
	"path/filepath"
	"strings"
)

var contentTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "application/javascript",
	".json":  "application/json",
	".png":   "image/png",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".woff2": "font/woff2",
	".txt":   "text/plain; charset=utf-8",
}

func GetContentType(path string) string {
	if ct, ok := contentTypes[strings.ToLower(extOf(path))]; ok {
		return ct
	}
	return "application/octet-stream"
}

func extOf(name string) string {
	return filepath.Ext(name)
}

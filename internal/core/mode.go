package core

import (
	"errors"
	"fmt"
	"strings"
)

type Mode int

const (
	ModeDev Mode = iota
	ModeProd
)

func (m Mode) String() string {
	if m == ModeDev {
		return "dev"
	}
	return "prod"
}

// RenderMode decides who mounts the page.
type RenderMode int

const (
	// RenderClient sends an empty #app and the page in a <template>; the
	// client runtime mounts it on first paint.
	RenderClient RenderMode = iota
	// RenderSSR mounts the page on the server and sends it inside #app.
	RenderSSR
)

var ErrUnknownRenderMode = errors.New("unknown render mode")

func (r RenderMode) String() string {
	if r == RenderSSR {
		return "ssr"
	}
	return "client"
}

func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "client", "client-only":
		return RenderClient, nil
	case "ssr", "server":
		return RenderSSR, nil
	default:
		return RenderClient, fmt.Errorf("%w: %q", ErrUnknownRenderMode, s)
	}
}

package core

type PageAction int

const (
	ActionNotFound PageAction = iota
	ActionMethodNotAllowed
	ActionRenderClientShell
	ActionRenderSSR
)

func (a PageAction) String() string {
	switch a {
	case ActionMethodNotAllowed:
		return "method-not-allowed"
	case ActionRenderClientShell:
		return "render-client-shell"
	case ActionRenderSSR:
		return "render-ssr"
	default:
		return "not-found"
	}
}

type PageRequest struct {
	Method      string
	RequestPath string
	// Override is the raw ?render= query value; empty keeps DefaultMode.
	Override    string
	DefaultMode RenderMode
}

type PageDecision struct {
	Action PageAction
	Render RenderMode
}

func DecidePageAction(req PageRequest) PageDecision {
	if NormalizePath(req.RequestPath) != "/" {
		return PageDecision{Action: ActionNotFound}
	}

	if req.Method != "" && req.Method != "GET" && req.Method != "HEAD" {
		return PageDecision{Action: ActionMethodNotAllowed}
	}

	render := req.DefaultMode
	if req.Override != "" {
		// An unknown override keeps the configured mode.
		if m, err := ParseRenderMode(req.Override); err == nil {
			render = m
		}
	}

	if render == RenderSSR {
		return PageDecision{Action: ActionRenderSSR, Render: render}
	}
	return PageDecision{Action: ActionRenderClientShell, Render: render}
}

// CacheKey identifies one rendered document variant.
func CacheKey(render RenderMode, assetsVersion string) string {
	return render.String() + ":" + assetsVersion
}

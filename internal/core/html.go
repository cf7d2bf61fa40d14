package core

import (
	"errors"
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	AppElementID       = "app"
	PageTemplateID     = "page-template"
	DefaultTitle       = "MedConnect"
	DefaultDescription = "A Smart Blockchain-Driven AI Platform for Hospitals and Patients"
)

var (
	ErrMissingScript = errors.New("missing script src")
	ErrMissingStyles = errors.New("missing stylesheet href")
)

type Document struct {
	Title       string
	Description string
	StylesHref  string
	ScriptSrc   string
	Render      RenderMode
	// Page is the page node. In RenderClient it must be the mounted page so
	// the runtime has something to clone; the shell itself stays empty.
	Page g.Node
}

// RenderDocument writes the full HTML document around the page.
func RenderDocument(w io.Writer, doc Document) error {
	if doc.ScriptSrc == "" {
		return ErrMissingScript
	}
	if doc.StylesHref == "" {
		return ErrMissingStyles
	}

	title := doc.Title
	if title == "" {
		title = DefaultTitle
	}
	description := doc.Description
	if description == "" {
		description = DefaultDescription
	}

	page := doc.Page
	if page == nil {
		page = g.Group(nil)
	}

	var app g.Node
	if doc.Render == RenderSSR {
		app = h.Div(h.ID(AppElementID), h.Data("ready", "true"), h.Data("render", doc.Render.String()), page)
	} else {
		app = g.Group{
			h.Div(h.ID(AppElementID), h.Data("ready", "false"), h.Data("render", doc.Render.String())),
			g.El("template", h.ID(PageTemplateID), page),
		}
	}

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.Meta(h.Name("description"), h.Content(description)),
				h.TitleEl(g.Text(title)),
				h.Link(h.Rel("stylesheet"), h.Href(doc.StylesHref)),
				h.Script(h.Src(doc.ScriptSrc), h.Defer()),
			),
			h.Body(app),
		),
	).Render(w)
}

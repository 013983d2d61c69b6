// Package render turns committed element trees into HTML.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/vango-dev/vango-ant/pkg/vdom"
)

// DefaultHandlerAttr marks elements that have event handlers so the client can
// route events back to them.
const DefaultHandlerAttr = "data-vid"

var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "wbr": true,
}

// RendererConfig configures a Renderer.
type RendererConfig struct {
	// HandlerAttr overrides DefaultHandlerAttr.
	HandlerAttr string
	// OmitHandlerIDs disables handler markers, for static output.
	OmitHandlerIDs bool
}

// Renderer writes element trees as HTML. Attributes are emitted in sorted
// order so output is stable.
type Renderer struct {
	cfg RendererConfig
}

// NewRenderer creates a renderer.
func NewRenderer(cfg RendererConfig) *Renderer {
	if cfg.HandlerAttr == "" {
		cfg.HandlerAttr = DefaultHandlerAttr
	}
	return &Renderer{cfg: cfg}
}

// PageData describes a full HTML document.
type PageData struct {
	Title       string
	Lang        string
	Dir         string
	Body        *vdom.Element
	StyleSheets []string
	Scripts     []string
}

// RenderToString renders a node without a runtime. Handler markers use the
// positional IDs Materialize assigns.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderElement(&buf, vdom.Materialize(node)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderElement writes el and its descendants to w.
func (r *Renderer) RenderElement(w io.Writer, el *vdom.Element) error {
	if el == nil {
		return nil
	}
	if el.IsText() {
		_, err := io.WriteString(w, templ.EscapeString(el.Node.Text))
		return err
	}

	tag := el.Tag()
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tag)
	r.writeAttrs(&sb, el)
	sb.WriteByte('>')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	if voidElements[tag] {
		return nil
	}

	for _, c := range el.Children {
		if err := r.RenderElement(w, c); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>", tag)
	return err
}

func (r *Renderer) writeAttrs(sb *strings.Builder, el *vdom.Element) {
	props := el.Node.Props
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := props[k].(type) {
		case nil:
		case bool:
			if v {
				sb.WriteByte(' ')
				sb.WriteString(k)
			}
		case string:
			writeAttr(sb, k, v)
		default:
			writeAttr(sb, k, fmt.Sprint(v))
		}
	}

	if !r.cfg.OmitHandlerIDs && len(el.Node.Handlers) > 0 {
		writeAttr(sb, r.cfg.HandlerAttr, el.ID)
	}
}

func writeAttr(sb *strings.Builder, key, value string) {
	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteString(`="`)
	sb.WriteString(templ.EscapeString(value))
	sb.WriteByte('"')
}

// RenderPage writes a complete document around data.Body.
func (r *Renderer) RenderPage(w io.Writer, data PageData) error {
	lang := data.Lang
	if lang == "" {
		lang = "en"
	}

	var head strings.Builder
	head.WriteString("<!DOCTYPE html>\n<html")
	writeAttr(&head, "lang", lang)
	if data.Dir != "" {
		writeAttr(&head, "dir", data.Dir)
	}
	head.WriteString("><head><meta charset=\"utf-8\"><title>")
	head.WriteString(templ.EscapeString(data.Title))
	head.WriteString("</title>")
	for _, href := range data.StyleSheets {
		head.WriteString(`<link rel="stylesheet"`)
		writeAttr(&head, "href", href)
		head.WriteByte('>')
	}
	for _, src := range data.Scripts {
		head.WriteString("<script")
		writeAttr(&head, "src", src)
		head.WriteString(" defer></script>")
	}
	head.WriteString(`</head><body><div id="app">`)

	if _, err := io.WriteString(w, head.String()); err != nil {
		return err
	}
	if err := r.RenderElement(w, data.Body); err != nil {
		return fmt.Errorf("render body: %w", err)
	}
	_, err := io.WriteString(w, "</div></body></html>")
	return err
}

// Component adapts el to a templ.Component so it can be embedded in templ pages.
func (r *Renderer) Component(el *vdom.Element) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.RenderElement(w, el)
	})
}

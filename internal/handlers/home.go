package handlers

import (
	"bytes"
	"net/http"

	"github.com/vango-dev/vango-ant/pkg/render"
)

// Home renders the gallery server-side. Effects run before the page is
// written, so measured state such as CJK spacing is already in the HTML.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	s := h.newSession()
	if err := s.Mount(r.Context()); err != nil {
		h.logger.Error("mount failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	defer s.Unmount()

	var buf bytes.Buffer
	err := h.renderer.RenderPage(&buf, render.PageData{
		Title:   "Buttons",
		Dir:     string(h.ui.Direction()),
		Body:    s.Tree(),
		Scripts: []string{"/_vango/client.js"},
	})
	if err != nil {
		h.logger.Error("render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

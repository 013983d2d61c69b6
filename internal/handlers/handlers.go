package handlers

import (
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/vango-dev/vango-ant/app/components/ui"
	"github.com/vango-dev/vango-ant/internal/config"
	"github.com/vango-dev/vango-ant/internal/gallery"
	"github.com/vango-dev/vango-ant/internal/hub"
	"github.com/vango-dev/vango-ant/internal/metrics"
	"github.com/vango-dev/vango-ant/internal/middleware"
	"github.com/vango-dev/vango-ant/pkg/render"
	"github.com/vango-dev/vango-ant/pkg/runtime"
)

//go:embed client.js
var clientJS []byte

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config   *config.Config
	ui       *ui.ConfigContext
	hub      *hub.Hub
	metrics  *metrics.Metrics
	renderer *render.Renderer
	upgrader websocket.Upgrader
	logger   *slog.Logger

	// NewRoot builds the root component for a page or session.
	NewRoot func(cc *ui.ConfigContext) runtime.Component
}

// New creates a new Handlers instance with all dependencies.
func New(cfg *config.Config, h *hub.Hub, m *metrics.Metrics, logger *slog.Logger) *Handlers {
	h.OnChange = func(n int) { m.Sessions.Set(float64(n)) }

	return &Handlers{
		config:   cfg,
		ui:       cfg.UIContext(),
		hub:      h,
		metrics:  m,
		renderer: render.NewRenderer(render.RendererConfig{}),
		upgrader: websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 4096},
		logger:   logger,
		NewRoot: func(cc *ui.ConfigContext) runtime.Component {
			return gallery.New(cc)
		},
	}
}

// Routes builds the router.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Recovery(h.logger))

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	r.Get("/", h.Home)
	r.Get("/_vango/client.js", h.ClientJS)
	r.Get("/_vango/ws", h.WebSocket)

	return r
}

// newSession creates an unmounted session for a fresh root.
func (h *Handlers) newSession() *runtime.Session {
	return runtime.New(h.NewRoot(h.ui), runtime.Options{
		MaxPasses: h.config.MaxRenderPasses,
		Logger:    h.logger,
		Hooks:     h.metrics.Hooks(),
		Renderer:  h.renderer,
	})
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

// ClientJS serves the script that forwards clicks over the WebSocket.
func (h *Handlers) ClientJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Write(clientJS)
}

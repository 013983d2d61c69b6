package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vango-ant/internal/config"
	"github.com/vango-dev/vango-ant/internal/handlers"
	"github.com/vango-dev/vango-ant/internal/hub"
	"github.com/vango-dev/vango-ant/internal/metrics"
	"github.com/vango-dev/vango-ant/pkg/vdom"
)

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Port:            "8080",
		Environment:     "development",
		LogLevel:        "error",
		Prefix:          "ant",
		Direction:       "ltr",
		AutoInsertSpace: true,
		MaxRenderPasses: 8,
	}
}

type testServer struct {
	*httptest.Server
	hub     *hub.Hub
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	h := hub.New()
	m := metrics.New()

	srv := httptest.NewServer(handlers.New(cfg, h, m, logger).Routes())
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, hub: h, metrics: m}
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, body := get(t, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestHomeRendersSettledGallery(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, body := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, `<html lang="en" dir="ltr">`)
	assert.Contains(t, body, `<script src="/_vango/client.js" defer></script>`)
	assert.Contains(t, body, `class="ant-btn ant-btn-primary ant-btn-two-chinese-chars"`)
	assert.Contains(t, body, `class="ant-btn ant-btn-link"`)
	assert.Contains(t, body, "Clicked 0 times")

	// server-side sessions are released after the response
	assert.Zero(t, srv.hub.Len())
}

func TestHomeUsesConfiguredPrefixAndDirection(t *testing.T) {
	cfg := testConfig()
	cfg.Prefix = "my"
	cfg.Direction = "rtl"
	cfg.AutoInsertSpace = false
	srv := newTestServer(t, cfg)

	_, body := get(t, srv.URL+"/")
	assert.Contains(t, body, `dir="rtl"`)
	assert.Contains(t, body, `class="my-btn my-btn-primary my-btn-rtl"`)
	assert.NotContains(t, body, "two-chinese-chars")
	assert.NotContains(t, body, "ant-btn")
}

func TestClientJS(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, body := get(t, srv.URL+"/_vango/client.js")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/javascript", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "/_vango/ws")
	assert.Contains(t, body, "data-vid")
}

type message struct {
	Type      string `json:"type"`
	Session   string `json:"session"`
	ID        string `json:"id"`
	HTML      string `json:"html"`
	Prevented bool   `json:"prevented"`
	Error     string `json:"error"`
}

func dial(t *testing.T, srv *testServer) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/_vango/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func read(t *testing.T, conn *websocket.Conn) message {
	t.Helper()
	var msg message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func send(t *testing.T, conn *websocket.Conn, id string) message {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]string{"type": "event", "id": id, "event": "click"}))
	return read(t, conn)
}

func TestWebSocketSession(t *testing.T) {
	srv := newTestServer(t, testConfig())
	conn := dial(t, srv)

	initial := read(t, conn)
	assert.Equal(t, "render", initial.Type)
	assert.NotEmpty(t, initial.Session)
	assert.Contains(t, initial.HTML, "Clicked 0 times")
	assert.Contains(t, initial.HTML, "ant-btn-two-chinese-chars")

	_, ok := srv.hub.Get(initial.Session)
	assert.True(t, ok)
	assert.Equal(t, float64(1), testutil.ToFloat64(srv.metrics.Sessions))

	id := findButton(t, srv, initial.Session, hasText("按钮"))
	reply := send(t, conn, id)
	assert.Equal(t, "render", reply.Type)
	assert.Equal(t, id, reply.ID)
	assert.False(t, reply.Prevented)
	assert.Contains(t, reply.HTML, "Clicked 1 times")

	reply = send(t, conn, "nope")
	assert.Equal(t, "error", reply.Type)
	assert.Contains(t, reply.Error, "unknown element")

	conn.Close()
	assert.Eventually(t, func() bool { return srv.hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(srv.metrics.Sessions) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWebSocketDisabledClickIsPrevented(t *testing.T) {
	srv := newTestServer(t, testConfig())
	conn := dial(t, srv)
	initial := read(t, conn)

	id := findButton(t, srv, initial.Session, func(el *vdom.Element) bool {
		return el.Node.Props["disabled"] == true
	})
	reply := send(t, conn, id)
	assert.Equal(t, "render", reply.Type)
	assert.True(t, reply.Prevented)
	assert.Contains(t, reply.HTML, "Clicked 0 times")
}

func TestWebSocketRejectsUnknownMessage(t *testing.T) {
	srv := newTestServer(t, testConfig())
	conn := dial(t, srv)
	read(t, conn)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))
	reply := read(t, conn)
	assert.Equal(t, "error", reply.Type)
	assert.Contains(t, reply.Error, "ping")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig())
	get(t, srv.URL+"/")

	resp, body := get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "vango_render_passes")
}

// findButton returns the ID of the first button in the session's tree that
// matches pred.
func findButton(t *testing.T, srv *testServer, session string, pred func(*vdom.Element) bool) string {
	t.Helper()
	s, ok := srv.hub.Get(session)
	require.True(t, ok)

	var id string
	s.Tree().Walk(func(el *vdom.Element) bool {
		if id == "" && el.Tag() == "button" && pred(el) {
			id = el.ID
		}
		return id == ""
	})
	require.NotEmpty(t, id, "no matching button")
	return id
}

func hasText(text string) func(*vdom.Element) bool {
	return func(el *vdom.Element) bool { return el.TextContent() == text }
}

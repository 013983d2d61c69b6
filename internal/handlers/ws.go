package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// clientMessage is sent by the browser for every routed event.
type clientMessage struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Event string `json:"event"`
}

// serverMessage carries the re-rendered tree back.
type serverMessage struct {
	Type      string `json:"type"`
	Session   string `json:"session,omitempty"`
	ID        string `json:"id,omitempty"`
	HTML      string `json:"html,omitempty"`
	Prevented bool   `json:"prevented,omitempty"`
	Error     string `json:"error,omitempty"`
}

// WebSocket mounts a session for the connection and dispatches the events the
// client sends until it disconnects.
func (h *Handlers) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	s := h.newSession()
	if err := s.Mount(ctx); err != nil {
		h.logger.Error("mount failed", "error", err)
		conn.WriteJSON(serverMessage{Type: "error", Error: "render failed"})
		return
	}
	id := h.hub.Register(s)
	defer h.hub.Remove(id)

	logger := h.logger.With("session", id)
	logger.Info("session started")

	html, err := s.HTML()
	if err != nil {
		logger.Error("render failed", "error", err)
		return
	}
	if err := conn.WriteJSON(serverMessage{Type: "render", Session: id, HTML: html}); err != nil {
		return
	}

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("read failed", "error", err)
			}
			logger.Info("session ended")
			return
		}
		if msg.Type != "event" {
			conn.WriteJSON(serverMessage{Type: "error", Error: "unknown message type " + msg.Type})
			continue
		}

		reply := serverMessage{Type: "render", ID: msg.ID}
		ev, err := s.Dispatch(ctx, msg.ID, msg.Event)
		if ev != nil {
			reply.Prevented = ev.DefaultPrevented()
		}
		if err != nil {
			logger.Warn("dispatch failed", "element", msg.ID, "event", msg.Event, "error", err)
			reply = serverMessage{Type: "error", ID: msg.ID, Error: err.Error()}
		} else if reply.HTML, err = s.HTML(); err != nil {
			logger.Error("render failed", "error", err)
			return
		}

		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

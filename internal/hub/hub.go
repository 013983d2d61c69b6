// Package hub tracks the live runtime sessions, one per WebSocket connection.
package hub

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/vango-dev/vango-ant/pkg/runtime"
)

// Hub is a registry of mounted sessions keyed by a generated session ID.
type Hub struct {
	sessions sync.Map // map[string]*runtime.Session
	count    atomic.Int64

	// OnChange, if set, is called with the live session count after every change.
	OnChange func(n int)
}

// New creates an empty hub.
func New() *Hub {
	return &Hub{}
}

// Register stores s under a fresh ID and returns it.
func (h *Hub) Register(s *runtime.Session) string {
	id := uuid.NewString()
	h.sessions.Store(id, s)
	h.changed(h.count.Add(1))
	return id
}

// Get returns the session stored under id.
func (h *Hub) Get(id string) (*runtime.Session, bool) {
	v, ok := h.sessions.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*runtime.Session), true
}

// Remove unmounts and forgets the session stored under id.
func (h *Hub) Remove(id string) {
	v, ok := h.sessions.LoadAndDelete(id)
	if !ok {
		return
	}
	v.(*runtime.Session).Unmount()
	h.changed(h.count.Add(-1))
}

// Len returns the number of live sessions.
func (h *Hub) Len() int { return int(h.count.Load()) }

func (h *Hub) changed(n int64) {
	if h.OnChange != nil {
		h.OnChange(int(n))
	}
}

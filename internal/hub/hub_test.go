package hub_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vango-ant/internal/hub"
	"github.com/vango-dev/vango-ant/pkg/runtime"
	"github.com/vango-dev/vango-ant/pkg/vdom"
)

func newSession(t *testing.T) *runtime.Session {
	t.Helper()
	s := runtime.New(runtime.FuncComponent(func() *vdom.VNode { return vdom.Div() }), runtime.Options{})
	require.NoError(t, s.Mount(context.Background()))
	return s
}

func TestRegisterGetRemove(t *testing.T) {
	var counts []int
	h := hub.New()
	h.OnChange = func(n int) { counts = append(counts, n) }

	s := newSession(t)
	id := h.Register(s)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	got, ok := h.Get(id)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, h.Len())

	h.Remove(id)
	h.Remove(id)
	_, ok = h.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
	assert.Nil(t, s.Tree(), "removed sessions are unmounted")
	assert.Equal(t, []int{1, 0}, counts)
}

func TestConcurrentRegister(t *testing.T) {
	h := hub.New()
	var wg sync.WaitGroup
	ids := make(chan string, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- h.Register(runtime.New(runtime.FuncComponent(func() *vdom.VNode { return nil }), runtime.Options{}))
		}()
	}
	wg.Wait()
	close(ids)

	assert.Equal(t, 50, h.Len())
	for id := range ids {
		h.Remove(id)
	}
	assert.Equal(t, 0, h.Len())
}

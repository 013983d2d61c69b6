// Package runtime mounts component trees and drives their render/commit cycle.
//
// A Session renders its root, materializes the output into an element tree,
// binds refs, and then runs the after-render effects registered on the nodes.
// Effects that write watched state mark the session dirty and cause another
// pass. Passes are bounded so a tree that never settles is reported instead of
// spinning.
package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vango-ant/pkg/render"
	"github.com/vango-dev/vango-ant/pkg/vdom"
)

const tracerName = "github.com/vango-dev/vango-ant/pkg/runtime"

// DefaultMaxPasses bounds the render passes of a single flush.
const DefaultMaxPasses = 8

var (
	ErrUnstableRender = errors.New("runtime: render did not settle")
	ErrNotMounted     = errors.New("runtime: session is not mounted")
	ErrUnknownElement = errors.New("runtime: unknown element")
	ErrNoHandler      = errors.New("runtime: element has no handler for event")
)

// Component is anything that can render a node tree.
type Component interface {
	Render() *vdom.VNode
}

// FuncComponent adapts a render function to Component.
type FuncComponent func() *vdom.VNode

func (f FuncComponent) Render() *vdom.VNode { return f() }

// Hooks observe session activity. All fields are optional.
type Hooks struct {
	OnFlush func(passes int, err error)
	OnEvent func(event string, prevented bool)
}

// Options configures a Session.
type Options struct {
	MaxPasses int
	Logger    *slog.Logger
	Tracer    trace.Tracer
	Hooks     Hooks
	Renderer  *render.Renderer
}

// Session owns one mounted tree. Its methods are safe for concurrent use but
// all tree work is serialized.
type Session struct {
	mu   sync.Mutex
	root Component
	opts Options

	tree    *vdom.Element
	refs    []*vdom.Ref
	unsubs  []func()
	mounted bool
	dirty   atomic.Bool
}

// New creates an unmounted session for root.
func New(root Component, opts Options) *Session {
	if opts.MaxPasses <= 0 {
		opts.MaxPasses = DefaultMaxPasses
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer(tracerName)
	}
	if opts.Renderer == nil {
		opts.Renderer = render.NewRenderer(render.RendererConfig{})
	}
	return &Session{root: root, opts: opts}
}

// Mount performs the initial render and runs effects until the tree settles.
func (s *Session) Mount(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mounted = true
	return s.flush(ctx, "mount")
}

// Refresh re-renders if watched state changed outside of event dispatch.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mounted {
		return ErrNotMounted
	}
	if !s.dirty.Load() {
		return nil
	}
	return s.flush(ctx, "refresh")
}

// Rerender renders the tree again, as a parent does when a child's props change.
func (s *Session) Rerender(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mounted {
		return ErrNotMounted
	}
	return s.flush(ctx, "rerender")
}

// Dispatch delivers an event to the element with the given ID and re-renders
// if the handler changed watched state. The returned event reports whether the
// default action was prevented.
func (s *Session) Dispatch(ctx context.Context, id, event string) (*vdom.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := s.opts.Tracer.Start(ctx, "runtime.dispatch", trace.WithAttributes(
		attribute.String("vango.element", id),
		attribute.String("vango.event", event),
	))
	defer span.End()

	if !s.mounted {
		return nil, ErrNotMounted
	}
	el := s.tree.Find(id)
	if el == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, id)
	}
	h, ok := el.Node.Handlers[event]
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrNoHandler, event, id)
	}

	ev := &vdom.Event{Type: event, Target: el}
	h(ev)
	span.SetAttributes(attribute.Bool("vango.prevented", ev.DefaultPrevented()))
	if s.opts.Hooks.OnEvent != nil {
		s.opts.Hooks.OnEvent(event, ev.DefaultPrevented())
	}

	if s.dirty.Load() {
		if err := s.flush(ctx, "dispatch"); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return ev, err
		}
	}
	return ev, nil
}

// Unmount releases refs and subscriptions.
func (s *Session) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.release()
	s.tree = nil
	s.mounted = false
}

// Tree returns the committed element tree.
func (s *Session) Tree() *vdom.Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

// WriteHTML renders the committed tree to w.
func (s *Session) WriteHTML(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mounted {
		return ErrNotMounted
	}
	return s.opts.Renderer.RenderElement(w, s.tree)
}

// HTML returns the committed tree as a string.
func (s *Session) HTML() (string, error) {
	var buf bytes.Buffer
	if err := s.WriteHTML(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// must be called with s.mu held
func (s *Session) flush(ctx context.Context, reason string) (err error) {
	_, span := s.opts.Tracer.Start(ctx, "runtime.flush", trace.WithAttributes(
		attribute.String("vango.reason", reason),
	))
	defer span.End()

	passes := 0
	defer func() {
		span.SetAttributes(attribute.Int("vango.passes", passes))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		if s.opts.Hooks.OnFlush != nil {
			s.opts.Hooks.OnFlush(passes, err)
		}
	}()

	for {
		if passes == s.opts.MaxPasses {
			s.opts.Logger.Warn("render did not settle", "reason", reason, "passes", passes)
			return fmt.Errorf("%w after %d passes", ErrUnstableRender, passes)
		}
		passes++
		s.dirty.Store(false)

		s.commit(s.root.Render())
		s.runEffects()

		if !s.dirty.Load() {
			s.opts.Logger.Debug("render settled", "reason", reason, "passes", passes)
			return nil
		}
	}
}

// must be called with s.mu held
func (s *Session) commit(node *vdom.VNode) {
	s.release()
	s.tree = vdom.Materialize(node)

	s.tree.Walk(func(el *vdom.Element) bool {
		n := el.Node
		if n.Ref != nil {
			n.Ref.Attach(el)
			s.refs = append(s.refs, n.Ref)
		}
		for _, w := range n.Watch {
			s.unsubs = append(s.unsubs, w.Subscribe(s.invalidate))
		}
		return true
	})
}

func (s *Session) runEffects() {
	s.tree.Walk(func(el *vdom.Element) bool {
		for _, fn := range el.Node.Effects {
			fn()
		}
		return true
	})
}

func (s *Session) release() {
	for _, r := range s.refs {
		r.Detach()
	}
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.refs = s.refs[:0]
	s.unsubs = s.unsubs[:0]
}

func (s *Session) invalidate() { s.dirty.Store(true) }

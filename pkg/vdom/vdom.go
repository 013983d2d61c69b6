// Package vdom defines the virtual node tree that components render to and the
// materialized element tree the runtime commits it into.
package vdom

// Props holds the attributes of an element node.
type Props map[string]any

// Handler is an event callback attached to an element.
type Handler func(*Event)

// Watchable is a piece of state a node depends on. The runtime subscribes to it
// on commit and schedules another render pass when it changes.
type Watchable interface {
	Subscribe(fn func()) (unsubscribe func())
}

// VNode is a virtual node. A node with an empty Tag is a text node.
type VNode struct {
	Tag      string
	Text     string
	Props    Props
	Children []*VNode
	Handlers map[string]Handler

	// Effects run after the tree containing this node has been committed.
	Effects []func()
	Ref     *Ref
	Watch   []Watchable
}

// IsText reports whether n is a text node.
func (n *VNode) IsText() bool { return n != nil && n.Tag == "" }

// Attr is a single element attribute.
type Attr struct {
	Key   string
	Value any
}

type eventHandler struct {
	event string
	fn    Handler
}

type effect struct{ fn func() }

type watch struct{ w Watchable }

// Text creates a text node.
func Text(s string) *VNode { return &VNode{Text: s} }

// El creates an element node. Options may be Attr, *VNode, []*VNode, *Ref,
// or values produced by OnClick, On, Effect and Watch. Nil children are skipped.
func El(tag string, opts ...any) *VNode {
	n := &VNode{Tag: tag, Props: Props{}}
	for _, opt := range opts {
		n.apply(opt)
	}
	return n
}

func (n *VNode) apply(opt any) {
	switch o := opt.(type) {
	case nil:
	case Attr:
		n.Props[o.Key] = o.Value
	case []Attr:
		for _, a := range o {
			n.Props[a.Key] = a.Value
		}
	case *VNode:
		if o != nil {
			n.Children = append(n.Children, o)
		}
	case []*VNode:
		for _, c := range o {
			if c != nil {
				n.Children = append(n.Children, c)
			}
		}
	case *Ref:
		n.Ref = o
	case eventHandler:
		if o.fn == nil {
			return
		}
		if n.Handlers == nil {
			n.Handlers = make(map[string]Handler)
		}
		n.Handlers[o.event] = o.fn
	case effect:
		if o.fn != nil {
			n.Effects = append(n.Effects, o.fn)
		}
	case watch:
		if o.w != nil {
			n.Watch = append(n.Watch, o.w)
		}
	case []any:
		for _, inner := range o {
			n.apply(inner)
		}
	}
}

// On attaches a handler for the named event.
func On(event string, fn Handler) any { return eventHandler{event: event, fn: fn} }

// OnClick attaches a click handler.
func OnClick(fn Handler) any { return On("click", fn) }

// Effect registers fn to run after the node's tree has been committed.
func Effect(fn func()) any { return effect{fn: fn} }

// Watch declares that the node's output depends on w.
func Watch(w Watchable) any { return watch{w: w} }

// Attribute helpers

func Class(c string) Attr         { return Attr{Key: "class", Value: c} }
func ID(id string) Attr           { return Attr{Key: "id", Value: id} }
func Type(t string) Attr          { return Attr{Key: "type", Value: t} }
func Href(h string) Attr          { return Attr{Key: "href", Value: h} }
func Target(t string) Attr        { return Attr{Key: "target", Value: t} }
func For(id string) Attr          { return Attr{Key: "for", Value: id} }
func Placeholder(s string) Attr   { return Attr{Key: "placeholder", Value: s} }
func Value(s string) Attr         { return Attr{Key: "value", Value: s} }
func Disabled(b bool) Attr        { return Attr{Key: "disabled", Value: b} }
func Data(key, value string) Attr { return Attr{Key: "data-" + key, Value: value} }

// Element helpers

func Div(opts ...any) *VNode    { return El("div", opts...) }
func Span(opts ...any) *VNode   { return El("span", opts...) }
func P(opts ...any) *VNode      { return El("p", opts...) }
func H1(opts ...any) *VNode     { return El("h1", opts...) }
func H3(opts ...any) *VNode     { return El("h3", opts...) }
func A(opts ...any) *VNode      { return El("a", opts...) }
func Button(opts ...any) *VNode { return El("button", opts...) }
func Input(opts ...any) *VNode  { return El("input", opts...) }
func Label(opts ...any) *VNode  { return El("label", opts...) }

package vdom

import (
	"strconv"
	"strings"
)

// Element is a committed node. IDs are positional paths ("0", "0.2", "0.2.1")
// and stay stable across renders as long as the tree shape does.
type Element struct {
	ID       string
	Node     *VNode
	Parent   *Element
	Children []*Element
}

// Materialize builds the element tree for root.
func Materialize(root *VNode) *Element {
	if root == nil {
		return nil
	}
	return materialize(root, nil, "0")
}

func materialize(n *VNode, parent *Element, id string) *Element {
	el := &Element{ID: id, Node: n, Parent: parent}
	if len(n.Children) > 0 {
		el.Children = make([]*Element, 0, len(n.Children))
	}
	for i, c := range n.Children {
		el.Children = append(el.Children, materialize(c, el, id+"."+strconv.Itoa(i)))
	}
	return el
}

// Tag returns the element's tag name, or "" for text.
func (e *Element) Tag() string { return e.Node.Tag }

// IsText reports whether e is a text element.
func (e *Element) IsText() bool { return e.Node.IsText() }

// TextContent returns the concatenated text of e and its descendants.
func (e *Element) TextContent() string {
	if e == nil {
		return ""
	}
	if e.IsText() {
		return e.Node.Text
	}
	var sb strings.Builder
	e.Walk(func(el *Element) bool {
		if el.IsText() {
			sb.WriteString(el.Node.Text)
		}
		return true
	})
	return sb.String()
}

// Walk visits e and its descendants in document order. Returning false from
// fn skips the element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Find returns the element with the given ID, or nil.
func (e *Element) Find(id string) *Element {
	if e == nil || id == "" {
		return nil
	}
	if e.ID == id {
		return e
	}
	if !strings.HasPrefix(id, e.ID+".") {
		return nil
	}
	rest := strings.TrimPrefix(id, e.ID+".")
	head, _, _ := strings.Cut(rest, ".")
	i, err := strconv.Atoi(head)
	if err != nil || i < 0 || i >= len(e.Children) {
		return nil
	}
	return e.Children[i].Find(id)
}

// Ref is a shared, non-owning handle to a committed element. The runtime binds
// it on commit and clears it on unmount; holders must not assume the element
// outlives the next commit.
type Ref struct {
	current *Element
}

// NewRef returns an unbound ref.
func NewRef() *Ref { return &Ref{} }

// Current returns the bound element, or nil when the owner is not mounted.
func (r *Ref) Current() *Element {
	if r == nil {
		return nil
	}
	return r.current
}

// Attach binds r to el.
func (r *Ref) Attach(el *Element) {
	if r != nil {
		r.current = el
	}
}

// Detach clears the binding.
func (r *Ref) Detach() {
	if r != nil {
		r.current = nil
	}
}

// Event is delivered to handlers. Calling PreventDefault cancels the
// browser-side default action.
type Event struct {
	Type   string
	Target *Element

	prevented bool
}

func (e *Event) PreventDefault()        { e.prevented = true }
func (e *Event) DefaultPrevented() bool { return e.prevented }

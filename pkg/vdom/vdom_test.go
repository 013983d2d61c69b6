package vdom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vango-ant/pkg/vdom"
)

func TestElOptions(t *testing.T) {
	ref := vdom.NewRef()
	clicked := false

	n := vdom.Button(
		vdom.Class("btn"),
		vdom.Type("submit"),
		vdom.OnClick(func(*vdom.Event) { clicked = true }),
		ref,
		nil,
		(*vdom.VNode)(nil),
		vdom.Text("Go"),
	)

	assert.Equal(t, "button", n.Tag)
	assert.Equal(t, "btn", n.Props["class"])
	assert.Equal(t, "submit", n.Props["type"])
	assert.Same(t, ref, n.Ref)
	require.Len(t, n.Children, 1)
	assert.True(t, n.Children[0].IsText())

	n.Handlers["click"](&vdom.Event{Type: "click"})
	assert.True(t, clicked)
}

func TestMaterializeIDsAndFind(t *testing.T) {
	root := vdom.Div(
		vdom.Span(vdom.Text("a")),
		vdom.Div(vdom.Text("b"), vdom.Span(vdom.Text("c"))),
	)

	tree := vdom.Materialize(root)
	require.NotNil(t, tree)
	assert.Equal(t, "0", tree.ID)
	assert.Equal(t, "abc", tree.TextContent())

	el := tree.Find("0.1.1")
	require.NotNil(t, el)
	assert.Equal(t, "span", el.Tag())
	assert.Equal(t, "c", el.TextContent())
	assert.Equal(t, "0.1", el.Parent.ID)

	assert.Nil(t, tree.Find("0.5"))
	assert.Nil(t, tree.Find("1"))
	assert.Nil(t, tree.Find("0.x"))
	assert.Nil(t, vdom.Materialize(nil))
}

func TestRefLifecycle(t *testing.T) {
	var ref *vdom.Ref
	assert.Nil(t, ref.Current())

	ref = vdom.NewRef()
	el := vdom.Materialize(vdom.Span())
	ref.Attach(el)
	assert.Same(t, el, ref.Current())
	ref.Detach()
	assert.Nil(t, ref.Current())
}

func TestEventPreventDefault(t *testing.T) {
	e := &vdom.Event{Type: "click"}
	assert.False(t, e.DefaultPrevented())
	e.PreventDefault()
	assert.True(t, e.DefaultPrevented())
}

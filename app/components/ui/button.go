package ui

import (
	"time"

	"github.com/vango-dev/vango-ant/pkg/vango"
	"github.com/vango-dev/vango-ant/pkg/vdom"
)

// 1. Define Typed Enums
type ButtonVariant string

const (
	ButtonVariantDefault ButtonVariant = "default"
	ButtonVariantPrimary ButtonVariant = "primary"
	ButtonVariantGhost   ButtonVariant = "ghost"
	ButtonVariantDashed  ButtonVariant = "dashed"
	ButtonVariantLink    ButtonVariant = "link"
	ButtonVariantText    ButtonVariant = "text"
)

type ButtonShape string

const (
	ButtonShapeCircle ButtonShape = "circle"
	ButtonShapeRound  ButtonShape = "round"
)

type ButtonSize string

const (
	ButtonSizeSmall  ButtonSize = "small"
	ButtonSizeMiddle ButtonSize = "middle"
	ButtonSizeLarge  ButtonSize = "large"
)

type ButtonHTMLType string

const (
	ButtonHTMLTypeSubmit ButtonHTMLType = "submit"
	ButtonHTMLTypeButton ButtonHTMLType = "button"
	ButtonHTMLTypeReset  ButtonHTMLType = "reset"
)

// ButtonKind selects the element a Button renders: NativeButton renders a
// <button>, AnchorButton renders an <a>.
type ButtonKind interface{ isButtonKind() }

type NativeButton struct {
	HTMLType ButtonHTMLType
}

type AnchorButton struct {
	Href   string
	Target string
}

func (NativeButton) isButtonKind() {}
func (AnchorButton) isButtonKind() {}

// LoadingState is accepted for API completeness; it does not change output or
// gate clicks.
type LoadingState struct {
	Loading bool
	Delay   time.Duration
}

// 2. Define Component Config
type ButtonConfig struct {
	BaseConfig
	Variant   ButtonVariant
	Shape     ButtonShape
	Size      ButtonSize
	Kind      ButtonKind
	Loading   LoadingState
	Icon      *vdom.VNode
	PrefixCls string
	Danger    bool
	Ghost     bool
	Block     bool
	Disabled  bool
	OnClick   func(*vdom.Event)
	Ref       *vdom.Ref

	// AutoInsertSpace lets a single button opt out of CJK spacing even when the
	// configuration allows it.
	AutoInsertSpace bool
}

// Implement Configurable interface
func (c *ButtonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

// 3. Define Option Type Alias (for better DX)
type ButtonOption = Option[*ButtonConfig]

// 4. Define Component-Specific Options
func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func Shape(s ButtonShape) ButtonOption {
	return func(c *ButtonConfig) { c.Shape = s }
}

func Size(s ButtonSize) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

func Danger(b bool) ButtonOption {
	return func(c *ButtonConfig) { c.Danger = b }
}

func Ghost(b bool) ButtonOption {
	return func(c *ButtonConfig) { c.Ghost = b }
}

func Block(b bool) ButtonOption {
	return func(c *ButtonConfig) { c.Block = b }
}

func Disabled(b bool) ButtonOption {
	return func(c *ButtonConfig) { c.Disabled = b }
}

func Loading(b bool) ButtonOption {
	return func(c *ButtonConfig) { c.Loading = LoadingState{Loading: b} }
}

func LoadingDelay(d time.Duration) ButtonOption {
	return func(c *ButtonConfig) { c.Loading = LoadingState{Loading: true, Delay: d} }
}

// HTMLType makes the button a native <button> of type t.
func HTMLType(t ButtonHTMLType) ButtonOption {
	return func(c *ButtonConfig) { c.Kind = NativeButton{HTMLType: t} }
}

// Href makes the button a navigational <a>.
func Href(href string) ButtonOption {
	return Anchor(href, "")
}

// Anchor makes the button a navigational <a> with a target.
func Anchor(href, target string) ButtonOption {
	return func(c *ButtonConfig) { c.Kind = AnchorButton{Href: href, Target: target} }
}

func Icon(n *vdom.VNode) ButtonOption {
	return func(c *ButtonConfig) { c.Icon = n }
}

// PrefixCls overrides the resolved base token.
func PrefixCls(p string) ButtonOption {
	return func(c *ButtonConfig) { c.PrefixCls = p }
}

func OnClick(fn func(*vdom.Event)) ButtonOption {
	return func(c *ButtonConfig) { c.OnClick = fn }
}

// ButtonRef forwards the rendered element to ref.
func ButtonRef(ref *vdom.Ref) ButtonOption {
	return func(c *ButtonConfig) { c.Ref = ref }
}

func AutoInsertSpace(b bool) ButtonOption {
	return func(c *ButtonConfig) { c.AutoInsertSpace = b }
}

// 5. Implementation

// Button is a stateful widget. Construct it once and render it on every pass;
// it keeps whether its label is two CJK characters between renders.
type Button struct {
	cfg       ButtonConfig
	ownRef    *vdom.Ref
	twoCNChar *vango.Signal[bool]
}

// NewButton creates a button widget.
func NewButton(opts ...ButtonOption) *Button {
	b := &Button{
		ownRef:    vdom.NewRef(),
		twoCNChar: vango.NewSignal(false),
	}
	b.Reconfigure(opts...)
	return b
}

// Reconfigure replaces the button's props. State and refs are kept.
func (b *Button) Reconfigure(opts ...ButtonOption) {
	c := ButtonConfig{
		Variant:         ButtonVariantDefault,
		Kind:            NativeButton{HTMLType: ButtonHTMLTypeButton},
		AutoInsertSpace: true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	b.cfg = c
}

// Props returns a copy of the current props.
func (b *Button) Props() ButtonConfig { return b.cfg }

// Ref returns the handle bound to the rendered element.
func (b *Button) Ref() *vdom.Ref {
	if b.cfg.Ref != nil {
		return b.cfg.Ref
	}
	return b.ownRef
}

// HasTwoCNChar reports the measured state.
func (b *Button) HasTwoCNChar() bool { return b.twoCNChar.Get() }

// IsAnchor reports whether the button renders as a link.
func (b *Button) IsAnchor() bool {
	_, ok := b.cfg.Kind.(AnchorButton)
	return ok
}

// PrefixClass returns the resolved base token.
func (b *Button) PrefixClass() string {
	return b.cfg.Context.Prefix("btn", b.cfg.PrefixCls)
}

// ClassName returns the composed class attribute for the current state.
func (b *Button) ClassName() string {
	c := &b.cfg
	prefixCls := b.PrefixClass()

	return ClassNames(prefixCls, []Modifier{
		{Class: prefixCls + "-" + string(c.Variant), On: c.Variant != "" && c.Variant != ButtonVariantDefault},
		{Class: prefixCls + "-" + string(c.Shape), On: c.Shape != ""},
		{Class: prefixCls + "-block", On: c.Block},
		{Class: prefixCls + "-dangerous", On: c.Danger},
		{Class: prefixCls + "-rtl", On: c.Context.Direction() == DirectionRTL},
		{Class: prefixCls + "-two-chinese-chars", On: b.twoCNChar.Get() && c.Context.AutoInsertSpace()},
	}, CN(c.Classes...))
}

func (b *Button) Render() *vdom.VNode {
	c := &b.cfg

	renderOpts := make([]any, 0, len(c.Options)+10)
	renderOpts = append(renderOpts,
		vdom.Class(b.ClassName()),
		vdom.OnClick(b.handleClick),
		b.Ref(),
		vdom.Effect(b.fixTwoCNChar),
		vdom.Watch(b.twoCNChar),
	)

	switch k := c.Kind.(type) {
	case AnchorButton:
		renderOpts = append(renderOpts, vdom.Href(k.Href))
		if k.Target != "" {
			renderOpts = append(renderOpts, vdom.Target(k.Target))
		}
	case NativeButton:
		htmlType := k.HTMLType
		if htmlType == "" {
			htmlType = ButtonHTMLTypeButton
		}
		renderOpts = append(renderOpts, vdom.Type(string(htmlType)))
		if c.Disabled {
			renderOpts = append(renderOpts, vdom.Disabled(true))
		}
	}
	if c.Size != "" {
		renderOpts = append(renderOpts, vdom.Data("size", string(c.Size)))
	}

	if c.Icon != nil {
		renderOpts = append(renderOpts, c.Icon)
	}
	renderOpts = append(renderOpts, c.Options...)

	if b.IsAnchor() {
		return vdom.A(renderOpts...)
	}
	return vdom.Button(renderOpts...)
}

func (b *Button) handleClick(e *vdom.Event) {
	if b.cfg.Disabled {
		e.PreventDefault()
		return
	}
	if b.cfg.OnClick != nil {
		b.cfg.OnClick(e)
	}
}

func isUnborderedButtonVariant(v ButtonVariant) bool {
	return v == ButtonVariantText || v == ButtonVariantLink
}

func (b *Button) isNeedInserted() bool {
	c := &b.cfg
	return c.childCount() == 1 && c.Icon == nil && !isUnborderedButtonVariant(c.Variant) && c.AutoInsertSpace
}

// fixTwoCNChar runs after every commit. It only writes state when the measured
// result differs, so a settled label never schedules another pass.
func (b *Button) fixTwoCNChar() {
	el := b.Ref().Current()
	if el == nil || !b.cfg.Context.AutoInsertSpace() {
		return
	}

	if b.isNeedInserted() && IsTwoCNChar(el.TextContent()) {
		if !b.twoCNChar.Get() {
			b.twoCNChar.Set(true)
		}
	} else if b.twoCNChar.Get() {
		b.twoCNChar.Set(false)
	}
}

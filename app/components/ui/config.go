package ui

import "github.com/vango-dev/vango-ant/pkg/vdom"

// DefaultPrefix is the global class prefix used when no provider sets one.
const DefaultPrefix = "ant"

// Direction is the text direction components render in.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// RenderEmptyHandler produces placeholder content for an empty container.
type RenderEmptyHandler func(componentName string) *vdom.VNode

// ConfigContext carries the settings every component inherits from its
// ancestors. It is never mutated after construction: With returns a copy with
// the given fields replaced, so nested providers cannot leak into their
// parents. A nil *ConfigContext behaves like DefaultConfigContext().
type ConfigContext struct {
	prefix          string
	autoInsertSpace bool
	direction       Direction
	renderEmpty     RenderEmptyHandler
}

// ContextOption overrides one field of a ConfigContext.
type ContextOption func(*ConfigContext)

// WithPrefix sets the global class prefix. An empty prefix keeps the inherited one.
func WithPrefix(prefix string) ContextOption {
	return func(c *ConfigContext) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithAutoInsertSpace toggles the two-character CJK spacing modifier.
func WithAutoInsertSpace(on bool) ContextOption {
	return func(c *ConfigContext) { c.autoInsertSpace = on }
}

// WithDirection sets the text direction. Unknown values keep the inherited one.
func WithDirection(d Direction) ContextOption {
	return func(c *ConfigContext) {
		if d == DirectionLTR || d == DirectionRTL {
			c.direction = d
		}
	}
}

// WithRenderEmpty replaces the placeholder dispatcher for the subtree.
func WithRenderEmpty(h RenderEmptyHandler) ContextOption {
	return func(c *ConfigContext) { c.renderEmpty = h }
}

// DefaultConfigContext returns the configuration used when no provider is present.
func DefaultConfigContext() *ConfigContext {
	return &ConfigContext{
		prefix:          DefaultPrefix,
		autoInsertSpace: true,
		direction:       DirectionLTR,
	}
}

// NewConfigContext is DefaultConfigContext().With(opts...).
func NewConfigContext(opts ...ContextOption) *ConfigContext {
	return DefaultConfigContext().With(opts...)
}

// With returns a nested configuration layering opts over c.
func (c *ConfigContext) With(opts ...ContextOption) *ConfigContext {
	next := *c.orDefault()
	for _, opt := range opts {
		opt(&next)
	}
	return &next
}

// Prefix resolves the base class token for a component. A non-empty override
// is returned verbatim; otherwise the global prefix is joined to suffix.
func (c *ConfigContext) Prefix(suffix, override string) string {
	if override != "" {
		return override
	}
	p := c.orDefault().prefix
	if suffix == "" {
		return p
	}
	return p + "-" + suffix
}

// GlobalPrefix returns the prefix without a component suffix.
func (c *ConfigContext) GlobalPrefix() string { return c.orDefault().prefix }

// AutoInsertSpace reports whether two-character CJK labels get extra spacing.
func (c *ConfigContext) AutoInsertSpace() bool { return c.orDefault().autoInsertSpace }

// Direction returns the text direction.
func (c *ConfigContext) Direction() Direction { return c.orDefault().direction }

// RenderEmpty returns the placeholder for an empty container named componentName.
func (c *ConfigContext) RenderEmpty(componentName string) *vdom.VNode {
	if h := c.orDefault().renderEmpty; h != nil {
		return h(componentName)
	}
	return RenderEmpty(componentName)
}

var defaultContext = DefaultConfigContext()

func (c *ConfigContext) orDefault() *ConfigContext {
	if c == nil {
		return defaultContext
	}
	return c
}

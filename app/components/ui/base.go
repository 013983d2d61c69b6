package ui

import "github.com/vango-dev/vango-ant/pkg/vdom"

// NodeOption is an alias for any, as vdom element constructors take variadic any
type NodeOption = any

// BaseConfig is embedded in every component config
type BaseConfig struct {
	Classes []string
	Options []NodeOption // Merged list of Attributes and Children

	// Context is the configuration cascade the component renders under.
	// Nil means the built-in defaults.
	Context *ConfigContext
}

// Configurable allows generic options to work on any config
type Configurable interface {
	GetBase() *BaseConfig
}

// Option is a generic option function that modifies a Configurable
type Option[T Configurable] func(T)

// Class adds utility classes, appended after the computed ones
func Class[T Configurable](c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, c)
	}
}

// Attr allows passing raw vdom attributes (escape hatch)
func Attr[T Configurable](attr NodeOption) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Options = append(base.Options, attr)
	}
}

// Child allows passing children (strongly typed)
func Child[T Configurable](nodes ...*vdom.VNode) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		for _, n := range nodes {
			if n != nil {
				base.Options = append(base.Options, n)
			}
		}
	}
}

// Provide renders the component under cc instead of the defaults.
func Provide[T Configurable](cc *ConfigContext) Option[T] {
	return func(cfg T) {
		cfg.GetBase().Context = cc
	}
}

// childCount counts the nodes passed through Child.
func (b *BaseConfig) childCount() int {
	n := 0
	for _, o := range b.Options {
		if node, ok := o.(*vdom.VNode); ok && node != nil {
			n++
		}
	}
	return n
}

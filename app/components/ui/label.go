package ui

import (
	"github.com/vango-dev/vango-ant/pkg/vdom"
)

type LabelConfig struct {
	BaseConfig
	For      string
	Required bool
}

func (c *LabelConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type LabelOption = Option[*LabelConfig]

func LabelFor(id string) LabelOption {
	return func(c *LabelConfig) { c.For = id }
}

func LabelRequired(b bool) LabelOption {
	return func(c *LabelConfig) { c.Required = b }
}

// Label renders a form item label under the "form-item-label" family.
func Label(opts ...LabelOption) *vdom.VNode {
	c := &LabelConfig{}
	for _, opt := range opts {
		opt(c)
	}

	prefixCls := c.Context.Prefix("form-item-label", "")
	finalClass := ClassNames(prefixCls, []Modifier{
		{Class: prefixCls + "-required", On: c.Required},
	}, CN(c.Classes...))

	renderOpts := make([]any, 0, len(c.BaseConfig.Options)+2)
	renderOpts = append(renderOpts, vdom.Class(finalClass))
	if c.For != "" {
		renderOpts = append(renderOpts, vdom.For(c.For))
	}
	renderOpts = append(renderOpts, c.BaseConfig.Options...)

	return vdom.Label(renderOpts...)
}

package ui

import (
	"github.com/vango-dev/vango-ant/pkg/vdom"
)

type InputConfig struct {
	BaseConfig
	Type        string
	Placeholder string
	Value       string
	Size        ButtonSize
	Disabled    bool
}

func (c *InputConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type InputOption = Option[*InputConfig]

func InputType(t string) InputOption {
	return func(c *InputConfig) { c.Type = t }
}

func InputPlaceholder(s string) InputOption {
	return func(c *InputConfig) { c.Placeholder = s }
}

func InputValue(s string) InputOption {
	return func(c *InputConfig) { c.Value = s }
}

// InputSize shares the button's size scale.
func InputSize(s ButtonSize) InputOption {
	return func(c *InputConfig) { c.Size = s }
}

func InputDisabled(b bool) InputOption {
	return func(c *InputConfig) { c.Disabled = b }
}

func Input(opts ...InputOption) *vdom.VNode {
	c := &InputConfig{
		Type: "text", // Default
	}
	for _, opt := range opts {
		opt(c)
	}

	prefixCls := c.Context.Prefix("input", "")
	finalClass := ClassNames(prefixCls, []Modifier{
		{Class: prefixCls + "-sm", On: c.Size == ButtonSizeSmall},
		{Class: prefixCls + "-lg", On: c.Size == ButtonSizeLarge},
		{Class: prefixCls + "-disabled", On: c.Disabled},
		{Class: prefixCls + "-rtl", On: c.Context.Direction() == DirectionRTL},
	}, CN(c.Classes...))

	renderOpts := make([]any, 0, len(c.BaseConfig.Options)+5)
	renderOpts = append(renderOpts, vdom.Class(finalClass))
	if c.Type != "" {
		renderOpts = append(renderOpts, vdom.Type(c.Type))
	}
	if c.Placeholder != "" {
		renderOpts = append(renderOpts, vdom.Placeholder(c.Placeholder))
	}
	if c.Value != "" {
		renderOpts = append(renderOpts, vdom.Value(c.Value))
	}
	if c.Disabled {
		renderOpts = append(renderOpts, vdom.Disabled(true))
	}
	renderOpts = append(renderOpts, c.BaseConfig.Options...)

	return vdom.Input(renderOpts...)
}

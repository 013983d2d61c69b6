package ui

import (
	"github.com/vango-dev/vango-ant/pkg/vdom"
)

// Card
type CardConfig struct {
	BaseConfig
	Bordered bool
}

func (c *CardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardOption = Option[*CardConfig]

func CardBordered(b bool) CardOption {
	return func(c *CardConfig) { c.Bordered = b }
}

// Card renders a container. With no children it shows the configured
// placeholder for "Card".
func Card(opts ...CardOption) *vdom.VNode {
	c := &CardConfig{Bordered: true}
	for _, opt := range opts {
		opt(c)
	}

	prefixCls := c.Context.Prefix("card", "")
	finalClass := ClassNames(prefixCls, []Modifier{
		{Class: prefixCls + "-bordered", On: c.Bordered},
		{Class: prefixCls + "-rtl", On: c.Context.Direction() == DirectionRTL},
	}, CN(c.Classes...))

	renderOpts := make([]any, 0, len(c.BaseConfig.Options)+2)
	renderOpts = append(renderOpts, vdom.Class(finalClass))
	renderOpts = append(renderOpts, c.BaseConfig.Options...)
	if c.childCount() == 0 {
		renderOpts = append(renderOpts, c.Context.RenderEmpty("Card"))
	}
	return vdom.Div(renderOpts...)
}

// cardSection renders one of the card's inner parts under the "card" prefix.
func cardSection(base *BaseConfig, suffix string, el func(...any) *vdom.VNode) *vdom.VNode {
	finalClass := CN(
		base.Context.Prefix("card", "")+"-"+suffix,
		CN(base.Classes...),
	)

	renderOpts := make([]any, 0, len(base.Options)+1)
	renderOpts = append(renderOpts, vdom.Class(finalClass))
	renderOpts = append(renderOpts, base.Options...)
	return el(renderOpts...)
}

// CardHeader
type CardHeaderConfig struct{ BaseConfig }

func (c *CardHeaderConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardHeaderOption = Option[*CardHeaderConfig]

func CardHeader(opts ...CardHeaderOption) *vdom.VNode {
	c := &CardHeaderConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return cardSection(&c.BaseConfig, "head", vdom.Div)
}

// CardTitle
type CardTitleConfig struct{ BaseConfig }

func (c *CardTitleConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardTitleOption = Option[*CardTitleConfig]

func CardTitle(opts ...CardTitleOption) *vdom.VNode {
	c := &CardTitleConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return cardSection(&c.BaseConfig, "head-title", vdom.H3)
}

// CardContent
type CardContentConfig struct{ BaseConfig }

func (c *CardContentConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardContentOption = Option[*CardContentConfig]

func CardContent(opts ...CardContentOption) *vdom.VNode {
	c := &CardContentConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return cardSection(&c.BaseConfig, "body", vdom.Div)
}

// CardFooter
type CardFooterConfig struct{ BaseConfig }

func (c *CardFooterConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardFooterOption = Option[*CardFooterConfig]

func CardFooter(opts ...CardFooterOption) *vdom.VNode {
	c := &CardFooterConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return cardSection(&c.BaseConfig, "actions", vdom.Div)
}

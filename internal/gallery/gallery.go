// Package gallery is the demo page served by the preview server: every button
// variant under the root configuration plus a nested right-to-left provider.
package gallery

import (
	"fmt"

	"github.com/vango-dev/vango-ant/app/components/ui"
	"github.com/vango-dev/vango-ant/pkg/vango"
	"github.com/vango-dev/vango-ant/pkg/vdom"
)

// Gallery is the root component. Build one per session.
type Gallery struct {
	cc     *ui.ConfigContext
	rtl    *ui.ConfigContext
	clicks *vango.Signal[int]

	ltrButtons []*ui.Button
	rtlButtons []*ui.Button
}

// New builds the gallery under cc.
func New(cc *ui.ConfigContext) *Gallery {
	g := &Gallery{
		cc:     cc,
		rtl:    cc.With(ui.WithDirection(ui.DirectionRTL)),
		clicks: vango.NewSignal(0),
	}

	count := ui.OnClick(func(*vdom.Event) {
		g.clicks.Update(func(n int) int { return n + 1 })
	})
	ltr := ui.Provide[*ui.ButtonConfig](g.cc)
	rtl := ui.Provide[*ui.ButtonConfig](g.rtl)

	g.ltrButtons = []*ui.Button{
		ui.NewButton(ltr, count, ui.Variant(ui.ButtonVariantPrimary), label("中文")),
		ui.NewButton(ltr, count, label("按钮")),
		ui.NewButton(ltr, count, ui.Variant(ui.ButtonVariantDashed), ui.HTMLType(ui.ButtonHTMLTypeSubmit), label("Submit")),
		ui.NewButton(ltr, count, ui.Variant(ui.ButtonVariantLink), label("中文")),
		ui.NewButton(ltr, count, ui.Variant(ui.ButtonVariantText), label("文本")),
		ui.NewButton(ltr, count, ui.Danger(true), ui.Shape(ui.ButtonShapeRound), label("删除")),
		ui.NewButton(ltr, count, ui.Variant(ui.ButtonVariantPrimary), ui.Disabled(true), label("禁用")),
		ui.NewButton(ltr, count, ui.Icon(vdom.Span(vdom.Class("anticon"), vdom.Text("★"))), label("收藏")),
		ui.NewButton(ltr, ui.Anchor("https://ant.design", "_blank"), label("文档")),
		ui.NewButton(ltr, count, ui.Variant(ui.ButtonVariantGhost), ui.Size(ui.ButtonSizeLarge), ui.Block(true), label("Block")),
	}
	g.rtlButtons = []*ui.Button{
		ui.NewButton(rtl, count, ui.Variant(ui.ButtonVariantPrimary), label("确定")),
		ui.NewButton(rtl, count, label("Cancel")),
	}
	return g
}

func label(s string) ui.ButtonOption {
	return ui.Child[*ui.ButtonConfig](vdom.Text(s))
}

// Buttons returns the left-to-right buttons followed by the right-to-left ones.
func (g *Gallery) Buttons() []*ui.Button {
	out := make([]*ui.Button, 0, len(g.ltrButtons)+len(g.rtlButtons))
	out = append(out, g.ltrButtons...)
	return append(out, g.rtlButtons...)
}

// Clicks returns how many enabled buttons have been clicked.
func (g *Gallery) Clicks() int { return g.clicks.Get() }

func (g *Gallery) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Class(g.cc.Prefix("gallery", "")),
		vdom.H1(vdom.Text("Buttons")),
		section(g.cc, "Default direction", g.ltrButtons),
		section(g.rtl, "Right to left", g.rtlButtons),
		ui.Card(
			ui.Provide[*ui.CardConfig](g.cc),
			ui.Child[*ui.CardConfig](
				ui.Label(ui.Provide[*ui.LabelConfig](g.cc), ui.LabelFor("name"), ui.Child[*ui.LabelConfig](vdom.Text("Name"))),
				ui.Input(ui.Provide[*ui.InputConfig](g.cc), ui.InputPlaceholder("你的名字"), ui.Attr[*ui.InputConfig](vdom.ID("name"))),
			),
		),
		vdom.P(
			vdom.Class(g.cc.Prefix("gallery-clicks", "")),
			vdom.Watch(g.clicks),
			vdom.Text(fmt.Sprintf("Clicked %d times", g.clicks.Get())),
		),
	)
}

func section(cc *ui.ConfigContext, title string, buttons []*ui.Button) *vdom.VNode {
	nodes := make([]*vdom.VNode, 0, len(buttons))
	for _, b := range buttons {
		nodes = append(nodes, b.Render())
	}
	return ui.Card(
		ui.Provide[*ui.CardConfig](cc),
		ui.Child[*ui.CardConfig](
			ui.CardHeader(
				ui.Provide[*ui.CardHeaderConfig](cc),
				ui.Child[*ui.CardHeaderConfig](ui.CardTitle(
					ui.Provide[*ui.CardTitleConfig](cc),
					ui.Child[*ui.CardTitleConfig](vdom.Text(title)),
				)),
			),
			ui.CardContent(
				ui.Provide[*ui.CardContentConfig](cc),
				ui.Child[*ui.CardContentConfig](nodes...),
			),
		),
	)
}

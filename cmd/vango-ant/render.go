package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ant/app/components/ui"
	"github.com/vango-dev/vango-ant/pkg/runtime"
	"github.com/vango-dev/vango-ant/pkg/vdom"
)

type renderOptions struct {
	label       string
	variant     string
	shape       string
	danger      bool
	block       bool
	disabled    bool
	href        string
	target      string
	rtl         bool
	noAutoSpace bool
	prefix      string
	prefixCls   string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Mount a single button and print its settled HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.label, "label", "按钮", "Button label")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "default, primary, ghost, dashed, link or text")
	cmd.Flags().StringVar(&opts.shape, "shape", "", "circle or round")
	cmd.Flags().BoolVar(&opts.danger, "danger", false, "Render as dangerous")
	cmd.Flags().BoolVar(&opts.block, "block", false, "Stretch to the parent width")
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "Disable the button")
	cmd.Flags().StringVar(&opts.href, "href", "", "Render as a link to this URL")
	cmd.Flags().StringVar(&opts.target, "target", "", "Link target, used with --href")
	cmd.Flags().BoolVar(&opts.rtl, "rtl", false, "Render right to left")
	cmd.Flags().BoolVar(&opts.noAutoSpace, "no-auto-space", false, "Disable spacing of two-character Chinese labels")
	cmd.Flags().StringVar(&opts.prefix, "prefix", ui.DefaultPrefix, "Global class prefix")
	cmd.Flags().StringVar(&opts.prefixCls, "prefix-cls", "", "Class prefix override for this button")

	return cmd
}

func (o *renderOptions) context() *ui.ConfigContext {
	opts := []ui.ContextOption{
		ui.WithPrefix(o.prefix),
		ui.WithAutoInsertSpace(!o.noAutoSpace),
	}
	if o.rtl {
		opts = append(opts, ui.WithDirection(ui.DirectionRTL))
	}
	return ui.NewConfigContext(opts...)
}

func (o *renderOptions) button() (*ui.Button, error) {
	variant := ui.ButtonVariant(o.variant)
	switch variant {
	case "", ui.ButtonVariantDefault, ui.ButtonVariantPrimary, ui.ButtonVariantGhost,
		ui.ButtonVariantDashed, ui.ButtonVariantLink, ui.ButtonVariantText:
	default:
		return nil, fmt.Errorf("unknown variant %q", o.variant)
	}
	shape := ui.ButtonShape(o.shape)
	switch shape {
	case "", ui.ButtonShapeCircle, ui.ButtonShapeRound:
	default:
		return nil, fmt.Errorf("unknown shape %q", o.shape)
	}

	opts := []ui.ButtonOption{
		ui.Provide[*ui.ButtonConfig](o.context()),
		ui.Variant(variant),
		ui.Shape(shape),
		ui.Danger(o.danger),
		ui.Block(o.block),
		ui.Disabled(o.disabled),
		ui.PrefixCls(o.prefixCls),
	}
	if o.href != "" {
		opts = append(opts, ui.Anchor(o.href, o.target))
	}
	if o.label != "" {
		opts = append(opts, ui.Child[*ui.ButtonConfig](vdom.Text(o.label)))
	}
	return ui.NewButton(opts...), nil
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	btn, err := opts.button()
	if err != nil {
		return err
	}

	s := runtime.New(btn, runtime.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err := s.Mount(cmd.Context()); err != nil {
		return fmt.Errorf("mount: %w", err)
	}
	defer s.Unmount()

	if err := s.WriteHTML(cmd.OutOrStdout()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

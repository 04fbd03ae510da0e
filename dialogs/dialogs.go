// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dialogs provides the settings dialogs of the renderers.
// Each dialog shows the controls of its renderer kind and applies
// every edit to the live renderer through a [binding.Controller].
package dialogs

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"github.com/volrend/vpt/binding"
	"github.com/volrend/vpt/renderers"
	"github.com/volrend/vpt/tfedit"
)

// Dialog is the content of a renderer settings dialog.
type Dialog struct {

	// Body contains the dialog.
	Body *core.Body

	// Controller applies the edits to the renderer.
	Controller *binding.Controller

	// Inputs are the numeric control widgets, in plan order.
	Inputs []core.Widget

	// Editor is the transfer function editor, if the renderer has one.
	Editor *tfedit.Editor
}

// Build adds the controls for r to b and binds them to r.
// The controls start at the current settings of r, and the controller
// is closed when b is closed. On error, b is left unchanged.
func Build(b *core.Body, r renderers.Renderer) (*Dialog, error) {
	if r == nil {
		return nil, errors.New("dialogs.Build: nil renderer")
	}
	plan, err := PlanFor(r.Kind())
	if err != nil {
		return nil, err
	}
	d := &Dialog{Body: b}
	cfg := r.Config()

	content := core.NewFrame()
	content.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 0)
	})
	form := core.NewFrame(content)
	form.Styler(func(s *styles.Style) {
		s.Display = styles.Grid
		s.Columns = 2
		s.Grow.Set(1, 0)
	})
	bindings := make([]binding.Binding, 0, len(plan.Controls))
	for _, c := range plan.Controls {
		core.NewText(form).SetText(c.Label).SetTooltip(c.Tooltip)
		value := c.Inverse(cfg[c.Param])
		var in binding.NumberInput
		if c.Slider {
			sl := core.NewSlider(form).SetMin(c.Min).SetStep(c.Step)
			if c.Max > c.Min {
				sl.SetMax(c.Max)
			}
			sl.SetValue(value).SetTooltip(c.Tooltip)
			in = binding.SliderInput{Slider: sl}
			d.Inputs = append(d.Inputs, sl)
		} else {
			sp := core.NewSpinner(form).SetMin(c.Min).SetStep(c.Step)
			if c.Max > c.Min {
				sp.SetMax(c.Max)
			}
			sp.SetValue(value).SetTooltip(c.Tooltip)
			in = binding.SpinnerInput{Spinner: sp}
			d.Inputs = append(d.Inputs, sp)
		}
		bindings = append(bindings, binding.Binding{Name: c.Label, Input: in, Param: c.Param, Transform: c.Transform})
	}

	var tfb *binding.TransferFunctionBinding
	if plan.TransferFunction {
		slot := core.NewFrame(content)
		slot.Styler(func(s *styles.Style) {
			s.Grow.Set(1, 0)
		})
		d.Editor = tfedit.NewEditor()
		if tfs, ok := r.(renderers.TransferFunctionSetter); ok && tfs.TransferFunction() != nil {
			d.Editor.SetTransferFunction(tfs.TransferFunction())
		}
		tfb = &binding.TransferFunctionBinding{
			Source:    binding.EditorSource{Editor: d.Editor},
			Container: binding.FrameContainer{Frame: slot},
		}
	}

	d.Controller, err = binding.New(r, bindings, tfb)
	if err != nil {
		return nil, fmt.Errorf("dialogs: %s: %w", r.Kind(), err)
	}
	b.AddChild(content)
	d.Controller.SetErrorHandler(binding.ErrorSnackbar(b))
	b.OnClose(func(e events.Event) {
		d.Controller.Close()
	})
	return d, nil
}

// Title returns the dialog title for the given renderer kind.
func Title(k renderers.Kind) string {
	t, err := renderers.Resolve(k)
	if err != nil {
		return "Renderer settings"
	}
	return fmt.Sprintf("%s settings (%s)", t.Name, t.Doc)
}

// Run opens the settings dialog for r in a new window dialog
// in the context of the given widget.
func Run(ctx core.Widget, r renderers.Renderer) (*Dialog, error) {
	b := core.NewBody(Title(r.Kind()))
	d, err := Build(b, r)
	if err != nil {
		return nil, err
	}
	b.AddOKOnly().RunWindowDialog(ctx)
	return d, nil
}

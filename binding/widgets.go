// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"fmt"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/tree"
	"github.com/volrend/vpt/tfedit"
	"github.com/volrend/vpt/transfer"
)

// listen adds a listener for the given event type to w and returns a
// function that disables it. Widgets keep their listeners for their
// whole lifetime, so the listener is disabled instead of removed.
func listen(w core.Widget, typ events.Types, fun func()) (detach func()) {
	l := &fun
	w.AsWidget().On(typ, func(e events.Event) {
		if f := *l; f != nil {
			f()
		}
	})
	return func() { *l = nil }
}

// SpinnerInput is a [NumberInput] for a [core.Spinner].
// Spinners commit a new value with a change event, for typed values
// and for the increment buttons alike.
type SpinnerInput struct {
	Spinner *core.Spinner
}

func (si SpinnerInput) Value() float32 { return si.Spinner.Value }

func (si SpinnerInput) OnInput(fun func()) func() {
	return listen(si.Spinner, events.Change, fun)
}

// SliderInput is a [NumberInput] for a [core.Slider].
// It listens to input events, so every intermediate value of a drag
// is applied.
type SliderInput struct {
	Slider *core.Slider
}

func (si SliderInput) Value() float32 { return si.Slider.Value }

func (si SliderInput) OnInput(fun func()) func() {
	return listen(si.Slider, events.Input, fun)
}

// EditorSource is a [TransferFunctionSource] for a [tfedit.Editor].
type EditorSource struct {
	Editor *tfedit.Editor
}

func (es EditorSource) TransferFunction() *transfer.Function { return es.Editor.TransferFunction() }

func (es EditorSource) OnChange(fun func()) func() {
	return listen(es.Editor, events.Change, fun)
}

// FrameContainer is a [Container] that mounts widgets into a [core.Frame].
type FrameContainer struct {
	Frame *core.Frame
}

// Add adds child, a [tree.Node] or an [EditorSource], to the end of the
// frame. The child must not have a parent yet.
func (fc FrameContainer) Add(child any) error {
	if es, ok := child.(EditorSource); ok {
		child = es.Editor
	}
	n, ok := child.(tree.Node)
	if !ok {
		return fmt.Errorf("binding: cannot mount %T into a frame", child)
	}
	if n.AsTree().Parent != nil {
		return fmt.Errorf("binding: %s is already mounted", n.AsTree().Name)
	}
	fc.Frame.AddChild(n)
	return nil
}

// ErrorSnackbar returns an error handler for [Controller.SetErrorHandler]
// that shows errors in a snackbar in the context of the given widget.
func ErrorSnackbar(ctx core.Widget) func(err error) {
	return func(err error) {
		core.ErrorSnackbar(ctx, err)
	}
}

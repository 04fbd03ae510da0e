// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package binding keeps the configuration of a live renderer in sync with
// a set of input controls. Each input event is handled on its own:
// the control value is read, transformed, written into the renderer,
// and the renderer is reset, before the next event is handled.
package binding

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"github.com/volrend/vpt/renderers"
	"github.com/volrend/vpt/transfer"
)

// NumberInput is a numeric control that reports its value
// and notifies listeners when the user edits it.
type NumberInput interface {

	// Value returns the current value of the control.
	Value() float32

	// OnInput adds a listener called after each user edit, and returns
	// a function that removes it again.
	OnInput(fun func()) (detach func())
}

// TransferFunctionSource is a control that produces transfer functions.
type TransferFunctionSource interface {

	// TransferFunction returns the current transfer function.
	TransferFunction() *transfer.Function

	// OnChange adds a listener called after each change of the transfer
	// function, and returns a function that removes it again.
	OnChange(fun func()) (detach func())
}

// Container is a slot that a [TransferFunctionSource] can be mounted into.
type Container interface {
	Add(child any) error
}

// Transform maps a control value to a renderer setting.
type Transform func(v float32) float32

// Identity returns v unchanged.
func Identity(v float32) float32 { return v }

// Reciprocal returns 1/v. It does not guard against zero:
// 0 maps to +Inf and -0 to -Inf.
func Reciprocal(v float32) float32 { return 1 / v }

// Binding couples one numeric control to one renderer setting.
type Binding struct {

	// Name identifies the binding in logs and errors.
	Name string

	// Input is the control.
	Input NumberInput

	// Param is the renderer setting written on input.
	Param renderers.Param

	// Transform maps the control value to the setting.
	// A nil Transform is [Identity].
	Transform Transform
}

// TransferFunctionBinding couples a transfer function editor
// to the transfer function of the renderer.
type TransferFunctionBinding struct {

	// Source is the editor.
	Source TransferFunctionSource

	// Container is where the editor is mounted when the controller
	// is constructed. It is optional for editors that are already placed.
	Container Container
}

// Controller applies edits from bound controls to a renderer.
// It is not safe for concurrent use: all events must be delivered
// on one goroutine, as GUI event loops do.
type Controller struct {
	renderer renderers.Renderer
	tfs      renderers.TransferFunctionSetter
	bindings []Binding
	source   TransferFunctionSource

	detach  []func()
	onError func(err error)

	edits  int
	resets int
	closed bool
}

// New returns a controller that binds the given numeric controls and
// optional transfer function editor to r. It subscribes to all controls
// and mounts the editor into its container; no listener runs during New.
//
// Errors from event handlers are only logged by default. Hosts that show
// the controls to a user should install a handler that surfaces them,
// such as [ErrorSnackbar], with [Controller.SetErrorHandler].
func New(r renderers.Renderer, bindings []Binding, tf *TransferFunctionBinding) (*Controller, error) {
	if r == nil {
		return nil, errors.New("binding.New: nil renderer")
	}
	c := &Controller{renderer: r, bindings: slices.Clone(bindings), onError: logError}
	cfg := r.Config()
	for i, b := range bindings {
		if b.Input == nil {
			return nil, fmt.Errorf("binding.New: binding %q has no input", b.Name)
		}
		if _, ok := cfg[b.Param]; !ok {
			return nil, fmt.Errorf("binding.New: %w: %s renderer has no %s for binding %q", renderers.ErrUnsupportedParam, r.Kind(), b.Param, b.Name)
		}
		if b.Transform == nil {
			c.bindings[i].Transform = Identity
		}
	}
	if tf != nil {
		if tf.Source == nil {
			return nil, errors.New("binding.New: transfer function binding has no source")
		}
		tfs, ok := r.(renderers.TransferFunctionSetter)
		if !ok {
			return nil, fmt.Errorf("binding.New: %s renderer has no transfer function", r.Kind())
		}
		if tf.Container != nil {
			if err := tf.Container.Add(tf.Source); err != nil {
				return nil, fmt.Errorf("binding.New: mounting transfer function editor: %w", err)
			}
		}
		c.tfs = tfs
		c.source = tf.Source
	}

	for i := range c.bindings {
		c.detach = append(c.detach, c.bindings[i].Input.OnInput(func() {
			c.report(c.HandleInput(i))
		}))
	}
	if c.source != nil {
		c.detach = append(c.detach, c.source.OnChange(func() {
			c.report(c.HandleTransferFunction())
		}))
	}
	return c, nil
}

// SetErrorHandler sets the function that receives errors from event
// handlers, which have no caller to return them to. A nil handler
// restores the default, which logs them.
func (c *Controller) SetErrorHandler(fun func(err error)) *Controller {
	if fun == nil {
		fun = logError
	}
	c.onError = fun
	return c
}

func logError(err error) { errors.Log(err) }

func (c *Controller) report(err error) {
	if err != nil {
		c.onError(err)
	}
}

// HandleInput runs one edit cycle for the binding at index i:
// it reads the control, writes the transformed value into the renderer
// and resets the renderer. Errors from the renderer are returned unchanged.
func (c *Controller) HandleInput(i int) error {
	if c.closed {
		return nil
	}
	if i < 0 || i >= len(c.bindings) {
		return fmt.Errorf("binding: no binding %d", i)
	}
	b := c.bindings[i]
	v := b.Transform(b.Input.Value())
	if err := c.renderer.ApplyConfig(renderers.Config{b.Param: v}); err != nil {
		return err
	}
	c.edits++
	slog.Debug("applied renderer setting", "binding", b.Name, "param", b.Param, "value", v)
	return c.reset()
}

// HandleTransferFunction passes the current transfer function of the
// editor to the renderer and resets the renderer.
func (c *Controller) HandleTransferFunction() error {
	if c.closed || c.source == nil {
		return nil
	}
	c.tfs.SetTransferFunction(c.source.TransferFunction())
	c.edits++
	slog.Debug("applied transfer function", "renderer", c.renderer.Kind())
	return c.reset()
}

func (c *Controller) reset() error {
	c.resets++
	return c.renderer.Reset()
}

// Renderer returns the bound renderer, or nil after [Controller.Close].
func (c *Controller) Renderer() renderers.Renderer { return c.renderer }

// Edits returns the number of edits applied to the renderer.
func (c *Controller) Edits() int { return c.edits }

// Resets returns the number of times the controller reset the renderer.
func (c *Controller) Resets() int { return c.resets }

// Close removes all listeners and releases the renderer and controls.
// Events delivered after Close have no effect. Close is idempotent.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, d := range c.detach {
		d()
	}
	c.detach = nil
	c.bindings = nil
	c.source = nil
	c.tfs = nil
	c.renderer = nil
}

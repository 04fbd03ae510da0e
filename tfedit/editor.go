// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tfedit provides a widget for editing transfer functions.
package tfedit

//go:generate core generate

import (
	"strconv"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
	"github.com/volrend/vpt/transfer"
)

// Editor edits a [transfer.Function] with a preview of the rasterized
// function and one row of controls per bump. Every committed edit
// replaces [Editor.Function] with a new value and sends an
// [events.Change] event.
type Editor struct {
	core.Frame

	// Function is the transfer function being edited.
	// It is replaced, never modified, on every edit.
	Function *transfer.Function `set:"-"`
}

// TransferFunction returns the current transfer function.
func (ed *Editor) TransferFunction() *transfer.Function { return ed.Function }

// SetTransferFunction sets the transfer function shown by the editor.
// It does not send a change event.
func (ed *Editor) SetTransferFunction(tf *transfer.Function) *Editor {
	ed.Function = tf
	return ed
}

func (ed *Editor) Init() {
	ed.Frame.Init()
	ed.Function = transfer.Default()
	ed.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 0)
	})

	ed.Maker(func(p *tree.Plan) {
		tree.AddAt(p, "preview", func(w *core.Image) {
			w.SetTooltip("Transfer function: density to the right, gradient magnitude upwards")
			w.Styler(func(s *styles.Style) {
				s.Min.Set(units.Em(16), units.Em(4))
			})
			w.Updater(func() {
				w.SetImage(ed.Function.Image(128, 32))
			})
		})
		for i := range ed.Function.Bumps {
			tree.AddAt(p, "bump-"+strconv.Itoa(i), func(w *core.Frame) {
				ed.makeBump(w, i)
			})
		}
		tree.AddAt(p, "add", func(w *core.Button) {
			w.SetText("Add bump").SetIcon(icons.Add)
			w.OnClick(func(e events.Event) {
				ed.Edit(func(tf *transfer.Function) {
					tf.Bumps = append(tf.Bumps, transfer.DefaultBump())
				})
			})
		})
	})
}

// makeBump configures the row of controls for bump i.
func (ed *Editor) makeBump(fr *core.Frame, i int) {
	fr.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Center
	})
	slider := func(name, tooltip string, lo, hi float32, get func(b *transfer.Bump) *float32) {
		tree.AddChildAt(fr, name, func(w *core.Slider) {
			w.SetMin(lo).SetMax(hi).SetStep(0.01)
			w.SetTooltip(tooltip)
			w.Styler(func(s *styles.Style) {
				s.Min.X.Em(6)
			})
			w.Updater(func() {
				if i < len(ed.Function.Bumps) {
					w.SetValue(*get(&ed.Function.Bumps[i]))
				}
			})
			w.OnChange(func(e events.Event) {
				ed.Edit(func(tf *transfer.Function) {
					*get(&tf.Bumps[i]) = w.Value
				})
			})
		})
	}
	slider("x", "Density at the center of the bump", 0, 1, func(b *transfer.Bump) *float32 { return &b.Position.X })
	slider("y", "Gradient magnitude at the center of the bump", 0, 1, func(b *transfer.Bump) *float32 { return &b.Position.Y })
	slider("width", "Spread along density", 0.01, 1, func(b *transfer.Bump) *float32 { return &b.Size.X })
	slider("height", "Spread along gradient magnitude", 0.01, 1, func(b *transfer.Bump) *float32 { return &b.Size.Y })
	slider("alpha", "Opacity at the center of the bump", 0, 1, func(b *transfer.Bump) *float32 { return &b.Alpha })

	tree.AddChildAt(fr, "color", func(w *core.ColorButton) {
		w.Updater(func() {
			if i < len(ed.Function.Bumps) {
				w.Color = ed.Function.Bumps[i].Color
			}
		})
		w.OnChange(func(e events.Event) {
			ed.Edit(func(tf *transfer.Function) {
				tf.Bumps[i].Color = w.Color
			})
		})
	})
	tree.AddChildAt(fr, "remove", func(w *core.Button) {
		w.SetIcon(icons.Delete).SetType(core.ButtonAction)
		w.SetTooltip("Remove this bump")
		w.OnClick(func(e events.Event) {
			ed.Edit(func(tf *transfer.Function) {
				tf.Bumps = append(tf.Bumps[:i], tf.Bumps[i+1:]...)
			})
		})
	})
}

// Edit applies fun to a copy of the current transfer function,
// makes the copy current, and sends a change event.
func (ed *Editor) Edit(fun func(tf *transfer.Function)) {
	tf := ed.Function.Clone()
	fun(tf)
	ed.Function = tf
	ed.UpdateChange()
}

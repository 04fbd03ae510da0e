// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderers

import (
	"fmt"
	"image"
	"maps"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/volrend/vpt/transfer"
)

var (
	// ErrNoSuitableRenderer is returned when a renderer key or [Kind]
	// does not name any registered renderer.
	ErrNoSuitableRenderer = errors.New("no suitable renderer")

	// ErrUnsupportedParam is returned by [Renderer.ApplyConfig] when
	// the config contains a [Param] that the renderer does not use.
	ErrUnsupportedParam = errors.New("unsupported renderer parameter")

	// ErrInvalidConfig is returned by [Renderer.Reset] when the current
	// configuration cannot be rendered at all.
	ErrInvalidConfig = errors.New("invalid renderer configuration")
)

// Config is a partial set of numeric renderer settings.
type Config map[Param]float32

// Renderer is a volume rendering strategy. The host application owns
// renderer instances; dialogs and other controllers only update their
// configuration and ask them to reset.
type Renderer interface {

	// Kind returns the kind of renderer.
	Kind() Kind

	// Config returns a copy of the full current configuration.
	Config() Config

	// ApplyConfig updates the given settings. It fails with
	// [ErrUnsupportedParam] without changing anything if the config
	// contains a setting that the renderer does not use.
	// It does not reset the renderer.
	ApplyConfig(cfg Config) error

	// Reset discards all accumulated render state so that the next frame
	// reflects the current configuration. Calling it several times in a
	// row leaves the renderer in the same state as calling it once.
	Reset() error

	// Generation returns the number of times the renderer has been reset.
	Generation() uint64
}

// TransferFunctionSetter is implemented by renderers that classify
// samples with a transfer function.
type TransferFunctionSetter interface {

	// SetTransferFunction sets the transfer function used by the renderer.
	// The renderer keeps the given pointer; callers must not modify it afterwards.
	SetTransferFunction(tf *transfer.Function)

	// TransferFunction returns the current transfer function.
	TransferFunction() *transfer.Function
}

// base holds the state shared by all renderers: the configuration
// restricted to the settings the renderer uses, and the progressive
// accumulation buffer that [base.Reset] invalidates.
type base struct {
	kind   Kind
	config Config

	// accumulation is the progressive render target, nil until [base.Resize].
	accumulation *image.RGBA

	// frames is the number of frames accumulated since the last reset.
	frames int

	generation uint64
}

func newBase(kind Kind, defaults Config) base {
	return base{kind: kind, config: maps.Clone(defaults)}
}

func (b *base) Kind() Kind { return b.kind }

func (b *base) Config() Config { return maps.Clone(b.config) }

// Get returns the current value of the given setting,
// and whether the renderer uses it.
func (b *base) Get(p Param) (float32, bool) {
	v, ok := b.config[p]
	return v, ok
}

// Params returns the settings used by the renderer in [Param] order.
func (b *base) Params() []Param {
	ps := slices.Collect(maps.Keys(b.config))
	slices.Sort(ps)
	return ps
}

func (b *base) ApplyConfig(cfg Config) error {
	for p := range cfg {
		if _, ok := b.config[p]; !ok {
			return fmt.Errorf("%w: %s renderer has no %s", ErrUnsupportedParam, b.kind, p)
		}
	}
	maps.Copy(b.config, cfg)
	return nil
}

func (b *base) Reset() error {
	for _, p := range b.Params() {
		if math32.IsNaN(b.config[p]) {
			return fmt.Errorf("%w: %s renderer %s is NaN", ErrInvalidConfig, b.kind, p)
		}
	}
	if b.accumulation != nil {
		clear(b.accumulation.Pix)
	}
	b.frames = 0
	b.generation++
	return nil
}

func (b *base) Generation() uint64 { return b.generation }

// Resize sets the size of the accumulation buffer, discarding its contents.
func (b *base) Resize(width, height int) {
	b.accumulation = image.NewRGBA(image.Rect(0, 0, width, height))
	b.frames = 0
}

// Accumulate records one more progressive frame and returns
// the number of frames accumulated since the last reset.
func (b *base) Accumulate() int {
	b.frames++
	return b.frames
}

// Frames returns the number of frames accumulated since the last reset.
func (b *base) Frames() int { return b.frames }

// Image returns the accumulation buffer, which is nil until [base.Resize].
func (b *base) Image() *image.RGBA { return b.accumulation }

// transferSlot is embedded by renderers that use a transfer function.
type transferSlot struct {
	tf *transfer.Function
}

func newTransferSlot() transferSlot {
	return transferSlot{tf: transfer.Default()}
}

func (ts *transferSlot) SetTransferFunction(tf *transfer.Function) { ts.tf = tf }

func (ts *transferSlot) TransferFunction() *transfer.Function { return ts.tf }

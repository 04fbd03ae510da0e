// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transfer provides the two-dimensional transfer functions that
// map sampled volume density and gradient magnitude to color and opacity.
package transfer

import (
	"image"
	"image/color"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/jinzhu/copier"
)

// Bump is a Gaussian bump in the transfer function domain.
// The domain is the unit square, with density on X and
// gradient magnitude on Y.
type Bump struct {

	// Position is the center of the bump.
	Position math32.Vector2

	// Size is the standard deviation of the bump along each axis.
	Size math32.Vector2

	// Color is the color the bump assigns.
	Color color.RGBA

	// Alpha is the opacity at the center of the bump.
	Alpha float32
}

// Function is a transfer function composed of Gaussian bumps.
// Renderers treat a *Function as an immutable value: editors replace it
// with a modified [Function.Clone] instead of changing it in place.
type Function struct {
	Bumps []Bump
}

// DefaultBump returns the bump added by editors.
func DefaultBump() Bump {
	return Bump{
		Position: math32.Vec2(0.5, 0.5),
		Size:     math32.Vec2(0.2, 0.2),
		Color:    color.RGBA{255, 255, 255, 255},
		Alpha:    1,
	}
}

// Default returns a new transfer function with a single [DefaultBump].
func Default() *Function {
	return &Function{Bumps: []Bump{DefaultBump()}}
}

// Clone returns a deep copy of the transfer function.
func (tf *Function) Clone() *Function {
	cp := &Function{}
	errors.Log(copier.CopyWithOption(cp, tf, copier.Option{DeepCopy: true}))
	return cp
}

// Equal returns whether both transfer functions have the same bumps.
func (tf *Function) Equal(o *Function) bool {
	if tf == nil || o == nil {
		return tf == o
	}
	return slices.Equal(tf.Bumps, o.Bumps)
}

// At returns the color and opacity assigned to the given point of the
// domain. Opacities of overlapping bumps add up and are clamped to 1;
// the color is the opacity-weighted mean of the bump colors.
func (tf *Function) At(x, y float32) color.NRGBA {
	var r, g, b, a float32
	for _, bp := range tf.Bumps {
		if bp.Size.X <= 0 || bp.Size.Y <= 0 {
			continue
		}
		dx := (x - bp.Position.X) / bp.Size.X
		dy := (y - bp.Position.Y) / bp.Size.Y
		w := bp.Alpha * math32.Exp(-(dx*dx+dy*dy)/2)
		r += w * float32(bp.Color.R)
		g += w * float32(bp.Color.G)
		b += w * float32(bp.Color.B)
		a += w
	}
	if a <= 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: uint8(math32.Round(math32.Clamp(r/a, 0, 255))),
		G: uint8(math32.Round(math32.Clamp(g/a, 0, 255))),
		B: uint8(math32.Round(math32.Clamp(b/a, 0, 255))),
		A: uint8(math32.Round(255 * math32.Clamp(a, 0, 1))),
	}
}

// Image rasterizes the transfer function into a width x height lookup
// texture, with density increasing to the right and gradient magnitude
// increasing upwards.
func (tf *Function) Image(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for py := range height {
		y := 1 - (float32(py)+0.5)/float32(height)
		for px := range width {
			x := (float32(px) + 0.5) / float32(width)
			img.SetNRGBA(px, py, tf.At(x, y))
		}
	}
	return img
}

// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import "github.com/volrend/vpt/renderers"

// EAMInputs are the controls of the emission-absorption dialog.
type EAMInputs struct {

	// Steps is the number of samples per unit length;
	// the step size is its reciprocal.
	Steps NumberInput

	// Opacity is the alpha correction factor.
	Opacity NumberInput

	// TransferFunction is the transfer function editor.
	TransferFunction TransferFunctionSource

	// Container is where the transfer function editor is mounted.
	Container Container
}

// NewEAM returns a controller for the emission-absorption dialog:
// Steps sets the step size to 1/steps, Opacity sets the alpha
// correction as is, and the editor sets the transfer function.
func NewEAM(r renderers.Renderer, in EAMInputs) (*Controller, error) {
	return New(r, []Binding{
		{Name: "steps", Input: in.Steps, Param: renderers.StepSize, Transform: Reciprocal},
		{Name: "opacity", Input: in.Opacity, Param: renderers.AlphaCorrection, Transform: Identity},
	}, &TransferFunctionBinding{Source: in.TransferFunction, Container: in.Container})
}

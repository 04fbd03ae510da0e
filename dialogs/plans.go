// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"fmt"

	"github.com/volrend/vpt/binding"
	"github.com/volrend/vpt/renderers"
)

// Control describes one numeric control of a renderer dialog.
type Control struct {

	// Label is the text shown next to the control.
	Label string

	// Tooltip describes the control.
	Tooltip string

	// Param is the renderer setting the control edits.
	Param renderers.Param

	// Transform maps the control value to the setting.
	Transform binding.Transform

	// Inverse maps the setting back to a control value,
	// to show the current setting when the dialog opens.
	Inverse binding.Transform

	// Min, Max and Step bound the control. Max is ignored
	// unless it is greater than Min.
	Min, Max, Step float32

	// Slider uses a slider instead of a spinner. Sliders apply
	// every intermediate value while dragging.
	Slider bool
}

// Plan describes the dialog of one renderer kind.
type Plan struct {

	// Controls are the numeric controls, in display order.
	Controls []Control

	// TransferFunction adds a transfer function editor.
	TransferFunction bool
}

// stepsControl is the sampling rate control: the renderer step
// size is the reciprocal of the number of steps.
var stepsControl = Control{
	Label: "Steps", Tooltip: "Samples per unit length; the step size is its reciprocal",
	Param: renderers.StepSize, Transform: binding.Reciprocal, Inverse: binding.Reciprocal,
	Min: 1, Step: 1,
}

func identity(label, tooltip string, p renderers.Param, lo, hi, step float32, slider bool) Control {
	return Control{
		Label: label, Tooltip: tooltip, Param: p,
		Transform: binding.Identity, Inverse: binding.Identity,
		Min: lo, Max: hi, Step: step, Slider: slider,
	}
}

var (
	extinctionControl = identity("Extinction", "Maximum extinction coefficient", renderers.Extinction, 0, 0, 1, false)
	albedoControl     = identity("Albedo", "Scattering albedo", renderers.Albedo, 0, 1, 0.01, true)
	biasControl       = identity("Bias", "Scattering anisotropy", renderers.Bias, -1, 1, 0.01, true)
	bouncesControl    = identity("Bounces", "Maximum scattering events per path", renderers.Bounces, 0, 0, 1, false)
	frameStepsControl = identity("Steps per frame", "Path tracing steps per frame", renderers.Steps, 1, 0, 1, false)
)

// plans has one plan per renderer kind; init checks that none is missing.
var plans = [renderers.KindN]*Plan{
	renderers.KindMIP: {Controls: []Control{stepsControl}},
	renderers.KindISO: {Controls: []Control{
		stepsControl,
		identity("Isovalue", "Density of the isosurface", renderers.Isovalue, 0, 1, 0.01, true),
	}},
	renderers.KindEAM: {Controls: []Control{
		stepsControl,
		identity("Opacity", "Opacity correction factor", renderers.AlphaCorrection, 0, 10, 0.1, true),
	}, TransferFunction: true},
	renderers.KindLAO: {Controls: []Control{
		stepsControl,
		identity("Samples", "Occlusion samples per shading point", renderers.Samples, 1, 0, 1, false),
		extinctionControl,
	}, TransferFunction: true},
	renderers.KindMCS: {Controls: []Control{extinctionControl}, TransferFunction: true},
	renderers.KindMCM: {Controls: []Control{
		extinctionControl, albedoControl, biasControl,
		identity("Ratio", "Ratio between delta and ratio tracking", renderers.Ratio, 0, 1, 0.01, true),
		bouncesControl, frameStepsControl,
	}, TransferFunction: true},
	renderers.KindWDT: {Controls: []Control{
		extinctionControl, albedoControl, biasControl,
		identity("Majorant", "Weight of the tracking majorant", renderers.Majorant, 0, 1, 0.05, true),
		bouncesControl, frameStepsControl,
	}, TransferFunction: true},
	renderers.KindWAT: {Controls: []Control{
		extinctionControl, albedoControl, biasControl,
		identity("Minorant", "Extinction of the control medium", renderers.Minorant, 0, 1, 0.01, true),
		bouncesControl, frameStepsControl,
	}, TransferFunction: true},
	renderers.KindDOS: {Controls: []Control{
		stepsControl,
		identity("Slices", "Number of occlusion slices", renderers.Slices, 1, 0, 1, false),
		extinctionControl,
	}, TransferFunction: true},
	renderers.KindDepth: {Controls: []Control{stepsControl}},
}

func init() {
	if err := checkPlans(plans[:]); err != nil {
		panic(err)
	}
}

// checkPlans returns an error unless every kind has a plan whose controls
// and transfer function editor match the settings of its renderer.
func checkPlans(ps []*Plan) error {
	if len(ps) != int(renderers.KindN) {
		return fmt.Errorf("dialogs: %d plans for %d renderer kinds", len(ps), renderers.KindN)
	}
	for _, typ := range renderers.Types() {
		p := ps[typ.Kind]
		if p == nil {
			return fmt.Errorf("dialogs: no plan for renderer kind %s", typ.Kind)
		}
		r := typ.New()
		cfg := r.Config()
		for _, c := range p.Controls {
			if _, ok := cfg[c.Param]; !ok {
				return fmt.Errorf("dialogs: %s plan has a %s control but the renderer has no such setting", typ.Kind, c.Param)
			}
		}
		if _, ok := r.(renderers.TransferFunctionSetter); ok != p.TransferFunction {
			return fmt.Errorf("dialogs: %s plan transfer function editor does not match the renderer", typ.Kind)
		}
	}
	return nil
}

// PlanFor returns the dialog plan for the given kind.
func PlanFor(k renderers.Kind) (*Plan, error) {
	if k < 0 || k >= renderers.KindN {
		return nil, fmt.Errorf("%w for kind %d", renderers.ErrNoSuitableRenderer, k)
	}
	return plans[k], nil
}

// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"testing"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volrend/vpt/renderers"
	"github.com/volrend/vpt/transfer"
)

func TestPlansComplete(t *testing.T) {
	assert.NoError(t, checkPlans(plans[:]))
	for _, k := range renderers.KindValues() {
		p, err := PlanFor(k)
		require.NoError(t, err)
		assert.NotEmpty(t, p.Controls, k.String())
	}
	_, err := PlanFor(renderers.KindN)
	assert.ErrorIs(t, err, renderers.ErrNoSuitableRenderer)

	missing := append([]*Plan(nil), plans[:]...)
	missing[renderers.KindDOS] = nil
	assert.ErrorContains(t, checkPlans(missing), "no plan for renderer kind dos")

	wrong := append([]*Plan(nil), plans[:]...)
	wrong[renderers.KindMIP] = plans[renderers.KindEAM]
	assert.Error(t, checkPlans(wrong))
}

func TestEAMPlan(t *testing.T) {
	p, err := PlanFor(renderers.KindEAM)
	require.NoError(t, err)
	require.Len(t, p.Controls, 2)
	assert.Equal(t, renderers.StepSize, p.Controls[0].Param)
	assert.Equal(t, float32(0.125), p.Controls[0].Transform(8))
	assert.Equal(t, renderers.AlphaCorrection, p.Controls[1].Param)
	assert.Equal(t, float32(0.5), p.Controls[1].Transform(0.5))
	assert.True(t, p.TransferFunction)
}

func TestBuildEAM(t *testing.T) {
	b := core.NewBody()
	r := renderers.NewEAM()
	d, err := Build(b, r)
	require.NoError(t, err)
	require.Len(t, d.Inputs, 2)
	require.NotNil(t, d.Editor)
	assert.Same(t, r.TransferFunction(), d.Editor.TransferFunction())

	steps := d.Inputs[0].(*core.Spinner)
	opacity := d.Inputs[1].(*core.Slider)
	assert.InDelta(t, 20, steps.Value, 1e-4)
	assert.Equal(t, float32(3), opacity.Value)

	steps.SetValue(8)
	steps.Send(events.Change)
	assert.Equal(t, float32(0.125), r.StepSize())
	assert.Equal(t, float32(3), r.AlphaCorrection())

	opacity.SetValue(1.5)
	opacity.Send(events.Input)
	assert.Equal(t, float32(1.5), r.AlphaCorrection())
	assert.Equal(t, float32(0.125), r.StepSize())

	d.Editor.Edit(func(tf *transfer.Function) {
		tf.Bumps = nil
	})
	assert.Empty(t, r.TransferFunction().Bumps)
	assert.Equal(t, 3, d.Controller.Resets())
	assert.Equal(t, uint64(3), r.Generation())

	b.Send(events.Close)
	assert.Nil(t, d.Controller.Renderer())
	steps.SetValue(2)
	steps.Send(events.Change)
	assert.Equal(t, float32(0.125), r.StepSize())
}

// eamWithoutTransfer reports the EAM kind but has no transfer function slot.
type eamWithoutTransfer struct {
	renderers.Renderer
}

func TestBuildErrors(t *testing.T) {
	b := core.NewBody()
	n := b.NumChildren()
	_, err := Build(b, nil)
	assert.Error(t, err)

	_, err = Build(b, eamWithoutTransfer{renderers.NewEAM()})
	assert.ErrorContains(t, err, "no transfer function")
	assert.Equal(t, n, b.NumChildren(), "a failed build leaves the body unchanged")
}

func TestBuildAllKinds(t *testing.T) {
	for _, typ := range renderers.Types() {
		b := core.NewBody()
		r := typ.New()
		d, err := Build(b, r)
		require.NoError(t, err, typ.Name)
		p, _ := PlanFor(typ.Kind)
		assert.Len(t, d.Inputs, len(p.Controls), typ.Name)
		assert.Equal(t, p.TransferFunction, d.Editor != nil, typ.Name)
		assert.Equal(t, uint64(0), r.Generation(), "building a dialog must not reset %s", typ.Name)
	}
}

func TestSliderDrag(t *testing.T) {
	b := core.NewBody()
	r := renderers.NewWeightedDelta()
	d, err := Build(b, r)
	require.NoError(t, err)

	var majorant *core.Slider
	p, _ := PlanFor(renderers.KindWDT)
	for i, c := range p.Controls {
		if c.Param == renderers.Majorant {
			majorant = d.Inputs[i].(*core.Slider)
		}
	}
	require.NotNil(t, majorant)
	for _, v := range []float32{0.9, 0.75, 0.5, 0.25} {
		majorant.SetValue(v)
		majorant.Send(events.Input)
	}
	got, _ := r.Get(renderers.Majorant)
	assert.Equal(t, float32(0.25), got)
	assert.Equal(t, uint64(4), r.Generation(), "every intermediate value resets the renderer")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "EAMRenderer settings (emission-absorption model)", Title(renderers.KindEAM))
	assert.Equal(t, "Renderer settings", Title(-1))
}

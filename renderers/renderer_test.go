// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderers

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volrend/vpt/transfer"
)

func TestApplyConfig(t *testing.T) {
	r := NewEAM()
	assert.Equal(t, Config{StepSize: 0.05, AlphaCorrection: 3}, r.Config())

	require.NoError(t, r.ApplyConfig(Config{StepSize: 0.125}))
	assert.Equal(t, float32(0.125), r.StepSize())
	assert.Equal(t, float32(3), r.AlphaCorrection())

	err := r.ApplyConfig(Config{AlphaCorrection: 1, Albedo: 0.2})
	assert.ErrorIs(t, err, ErrUnsupportedParam)
	assert.Equal(t, float32(3), r.AlphaCorrection(), "rejected config must not be applied partially")
	assert.Equal(t, uint64(0), r.Generation(), "ApplyConfig must not reset")
}

func TestConfigIsCopy(t *testing.T) {
	r := NewMCM()
	cfg := r.Config()
	cfg[Albedo] = 0.99
	v, ok := r.Get(Albedo)
	assert.True(t, ok)
	assert.Equal(t, float32(0.5), v)
}

func TestParams(t *testing.T) {
	assert.Equal(t, []Param{StepSize}, NewMIP().Params())
	assert.Equal(t, []Param{StepSize, AlphaCorrection}, NewEAM().Params())
	assert.Equal(t, []Param{Extinction, Albedo, Bias, Bounces, Steps, Majorant}, NewWeightedDelta().Params())
	assert.Equal(t, []Param{Extinction, Albedo, Bias, Bounces, Steps, Minorant}, NewWeightedAnalogDecomposition().Params())
}

func TestReset(t *testing.T) {
	r := NewMCS()
	r.Resize(4, 2)
	r.Image().Set(1, 1, color.RGBA{10, 20, 30, 255})
	r.Accumulate()
	assert.Equal(t, 2, r.Accumulate())

	require.NoError(t, r.Reset())
	assert.Equal(t, 0, r.Frames())
	assert.Equal(t, uint64(1), r.Generation())
	assert.Equal(t, color.RGBA{}, r.Image().RGBAAt(1, 1))

	pix := append([]uint8(nil), r.Image().Pix...)
	require.NoError(t, r.Reset())
	assert.Equal(t, pix, r.Image().Pix)
	assert.Equal(t, 0, r.Frames())
	assert.Equal(t, uint64(2), r.Generation())
}

func TestResetNonFinite(t *testing.T) {
	r := NewEAM()
	require.NoError(t, r.ApplyConfig(Config{StepSize: math32.Inf(1)}))
	assert.NoError(t, r.Reset(), "infinite step sizes are passed through")

	require.NoError(t, r.ApplyConfig(Config{StepSize: math32.NaN()}))
	assert.ErrorIs(t, r.Reset(), ErrInvalidConfig)
	assert.Equal(t, uint64(1), r.Generation())
}

func TestTransferFunctionSlot(t *testing.T) {
	for _, typ := range Types() {
		r := typ.New()
		tfs, ok := r.(TransferFunctionSetter)
		switch typ.Kind {
		case KindMIP, KindISO, KindDepth:
			assert.False(t, ok, typ.Name)
			continue
		}
		require.True(t, ok, typ.Name)
		assert.NotNil(t, tfs.TransferFunction())

		tf := transfer.Default()
		tfs.SetTransferFunction(tf)
		assert.Same(t, tf, tfs.TransferFunction())
	}
}

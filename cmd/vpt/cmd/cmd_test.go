// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volrend/vpt/cmd/vpt/config"
	"github.com/volrend/vpt/renderers"
	"github.com/volrend/vpt/transfer"
)

func writeFile(t *testing.T, name, content string) string {
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, os.WriteFile(name, []byte(content), 0644))
	return name
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer(&config.Config{Renderer: renderers.KindMCS})
	require.NoError(t, err)
	assert.Equal(t, renderers.KindMCS, r.Kind())

	tf := &transfer.Function{Bumps: []transfer.Bump{transfer.DefaultBump()}}
	tf.Bumps[0].Alpha = 0.25
	fn := filepath.Join(t.TempDir(), "preset.json")
	require.NoError(t, transfer.Save(tf, fn))

	r, err = NewRenderer(&config.Config{Renderer: renderers.KindEAM, Preset: fn})
	require.NoError(t, err)
	got := r.(renderers.TransferFunctionSetter).TransferFunction()
	assert.True(t, tf.Equal(got))

	_, err = NewRenderer(&config.Config{Renderer: renderers.KindDepth, Preset: fn})
	assert.Error(t, err)

	_, err = NewRenderer(&config.Config{Renderer: renderers.KindN})
	assert.ErrorIs(t, err, renderers.ErrNoSuitableRenderer)
}

func TestRenderers(t *testing.T) {
	assert.NoError(t, Renderers(&config.Config{}))
}

func TestSeriesAndTTUV(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, filepath.Join(dir, "weighted-delta-tracking-0.5", "rmse.json"),
		`{"10": {"RMSE": 4}, "300": {"RMSE": 0.02}}`)

	out := filepath.Join(dir, "series.csv")
	require.NoError(t, Series(&config.Config{Files: []string{fn}, Out: out}))
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "label,seconds,rmse\n0.5,10,4\n", string(b))

	out = filepath.Join(dir, "ttuv.csv")
	require.NoError(t, TTUV(&config.Config{Files: []string{fn}, Seconds: 500, Out: out}))
	b, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "label,ttuv\n0.5,10\n", string(b))

	assert.Error(t, Series(&config.Config{}))
}

func TestMinorants(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, filepath.Join(dir, "decomposition-tracking", "rmse.json"),
		`{"0.5": {"RMSE": 3}, "0.05": {"RMSE": 1.5}}`)
	out := filepath.Join(dir, "minorants.csv")
	require.NoError(t, Minorants(&config.Config{File: fn, Out: out}))
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "minorant,rmse\n0.05,1.5\n0.5,3\n", string(b))

	assert.Error(t, Minorants(&config.Config{}))
}

func TestRMSE(t *testing.T) {
	assert.Error(t, RMSE(&config.Config{A: "a.png"}))

	dir := t.TempDir()
	fill := func(name string, c color.NRGBA) string {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		for y := range 2 {
			for x := range 2 {
				img.SetNRGBA(x, y, c)
			}
		}
		fn := filepath.Join(dir, name)
		require.NoError(t, imagex.Save(img, fn))
		return fn
	}
	a := fill("a.png", color.NRGBA{200, 100, 50, 255})
	b := fill("b.png", color.NRGBA{200, 100, 50, 0})
	out := filepath.Join(dir, "diff.png")
	require.NoError(t, RMSE(&config.Config{A: a, B: b, Out: out}))
	d, _, err := imagex.Open(out)
	require.NoError(t, err)
	r, g, bl, _ := d.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, bl})
}

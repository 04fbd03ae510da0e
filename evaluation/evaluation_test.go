// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evaluation

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRMSE(t *testing.T) {
	a := uniform(4, 3, color.NRGBA{100, 100, 100, 255})
	v, err := RMSE(a, a)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	b := uniform(4, 3, color.NRGBA{110, 90, 100, 255})
	v, err = RMSE(a, b)
	require.NoError(t, err)
	// squared errors 100, 100, 0 per pixel
	assert.InDelta(t, 8.16496580927726, v, 1e-12)

	v2, err := RMSE(b, a)
	require.NoError(t, err)
	assert.Equal(t, v, v2)

	_, err = RMSE(a, uniform(3, 4, color.Black))
	assert.ErrorContains(t, err, "same size")
}

func TestRMSEIgnoresAlpha(t *testing.T) {
	a := uniform(2, 2, color.NRGBA{200, 100, 50, 255})
	for _, alpha := range []uint8{0, 128} {
		v, err := RMSE(a, uniform(2, 2, color.NRGBA{200, 100, 50, alpha}))
		require.NoError(t, err)
		assert.Equal(t, 0.0, v, "alpha %d", alpha)
	}
}

func TestOpaque(t *testing.T) {
	img := uniform(3, 2, color.NRGBA{200, 100, 50, 0})
	o := Opaque(img.SubImage(image.Rect(1, 0, 3, 2)))
	assert.Equal(t, image.Rect(0, 0, 2, 2), o.Bounds())
	assert.Equal(t, color.NRGBA{200, 100, 50, 255}, o.NRGBAAt(1, 1))
}

func TestDifference(t *testing.T) {
	a := uniform(2, 2, color.NRGBA{100, 100, 100, 255})
	b := uniform(2, 2, color.NRGBA{110, 90, 100, 0})
	d, err := Difference(a, b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), d.Bounds())
	px := d.RGBAAt(1, 1)
	assert.InDelta(t, 10, int(px.R), 1)
	assert.InDelta(t, 10, int(px.G), 1)
	assert.InDelta(t, 0, int(px.B), 1)

	_, err = Difference(a, uniform(1, 2, color.Black))
	assert.ErrorContains(t, err, "same size")
}

func TestRMSEFiles(t *testing.T) {
	dir := t.TempDir()
	fa, fb := filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")
	require.NoError(t, imagex.Save(uniform(2, 2, color.NRGBA{0, 0, 0, 255}), fa))
	require.NoError(t, imagex.Save(uniform(2, 2, color.NRGBA{30, 30, 30, 255}), fb))
	v, err := RMSEFiles(fa, fb)
	require.NoError(t, err)
	assert.InDelta(t, 30, v, 1e-12)

	_, err = RMSEFiles(fa, filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func writeFile(t *testing.T, name, content string) string {
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, os.WriteFile(name, []byte(content), 0644))
	return name
}

func TestOpenSeries(t *testing.T) {
	fn := writeFile(t, filepath.Join(t.TempDir(), "weighted-delta-tracking-0.25", "rmse.json"),
		`{"100": {"RMSE": 2.5}, "20": {"RMSE": 9}, "300": {"RMSE": 0}, "5": {"RMSE": 20}}`)
	s, err := OpenSeries(fn)
	require.NoError(t, err)
	assert.Equal(t, "0.25", s.Label)
	assert.Equal(t, []Sample{{5, 20}, {20, 9}, {100, 2.5}, {300, 0}}, s.Samples)

	tr := s.Trimmed()
	assert.Equal(t, []Sample{{5, 20}, {20, 9}, {100, 2.5}}, tr.Samples)
	assert.Len(t, s.Samples, 4)
	assert.Empty(t, (&Series{}).Trimmed().Samples)

	bad := writeFile(t, filepath.Join(t.TempDir(), "x", "rmse.json"), `{"ten": {"RMSE": 1}}`)
	_, err = OpenSeries(bad)
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "1.0", Label("runs/weighted-delta-tracking-1.0/rmse.json"))
	assert.Equal(t, "decomposition-tracking", Label("decomposition-tracking/rmse.json"))
}

func TestTTUV(t *testing.T) {
	s := &Series{Label: "0.5", Samples: []Sample{{10, 4}, {300, 0.02}}}
	v, err := TTUV(s, 500)
	require.NoError(t, err)
	assert.InDelta(t, 10, v, 1e-12)

	_, err = TTUV(&Series{Label: "empty"}, 500)
	assert.Error(t, err)
}

func TestOpenMinorants(t *testing.T) {
	fn := writeFile(t, filepath.Join(t.TempDir(), "decomposition-tracking", "rmse.json"),
		`{"0.5": {"RMSE": 3}, "0.05": {"RMSE": 1.5}, "0.1": {"RMSE": 2}}`)
	ms, err := OpenMinorants(fn)
	require.NoError(t, err)
	assert.Equal(t, []Minorant{{"0.05", 1.5}, {"0.1", 2}, {"0.5", 3}}, ms)
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	s := &Series{Label: "0.25", Samples: []Sample{{5, 20}, {20, 9.5}}}
	require.NoError(t, WriteSeriesCSV(&buf, s))
	assert.Equal(t, "label,seconds,rmse\n0.25,5,20\n0.25,20,9.5\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTTUVCSV(&buf, []TTUVResult{{"0.25", 12.5}}))
	assert.Equal(t, "label,ttuv\n0.25,12.5\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteMinorantsCSV(&buf, []Minorant{{"0.05", 1.5}}))
	assert.Equal(t, "minorant,rmse\n0.05,1.5\n", buf.String())
}

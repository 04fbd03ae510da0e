// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evaluation compares renders of progressive renderers:
// the error of a render against a converged reference, how that error
// evolves over rendering time, and the time to unit variance (TTUV)
// figure of merit derived from it.
package evaluation

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/base/iox/jsonx"
	"github.com/anthonynsimon/bild/blend"
)

// RMSE returns the root mean squared error between the RGB channels of
// two images of the same size, in 8-bit channel units. Alpha is ignored:
// colors are compared unpremultiplied, as stored in the image files.
func RMSE(a, b image.Image) (float64, error) {
	if a.Bounds().Size() != b.Bounds().Size() {
		return 0, fmt.Errorf("evaluation.RMSE: images must have the same size: %v and %v", a.Bounds().Size(), b.Bounds().Size())
	}
	na, nb := Opaque(a), Opaque(b)
	sz := na.Bounds().Size()
	if sz.X == 0 || sz.Y == 0 {
		return 0, nil
	}
	var sum float64
	for y := range sz.Y {
		pa := na.Pix[y*na.Stride:]
		pb := nb.Pix[y*nb.Stride:]
		for x := range sz.X {
			for c := range 3 {
				d := float64(pa[4*x+c]) - float64(pb[4*x+c])
				sum += d * d
			}
		}
	}
	return math.Sqrt(sum / float64(3*sz.X*sz.Y)), nil
}

// Opaque returns a copy of img with its unpremultiplied RGB colors and
// full opacity, with bounds starting at the origin.
func Opaque(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 255
			out.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return out
}

// Difference returns the per-channel absolute difference of the RGB
// colors of two images of the same size, for inspecting where they differ.
func Difference(a, b image.Image) (*image.RGBA, error) {
	if a.Bounds().Size() != b.Bounds().Size() {
		return nil, fmt.Errorf("evaluation.Difference: images must have the same size: %v and %v", a.Bounds().Size(), b.Bounds().Size())
	}
	return blend.Difference(Opaque(a), Opaque(b)), nil
}

// RMSEFiles returns the [RMSE] between the images in the given files.
func RMSEFiles(a, b string) (float64, error) {
	ia, _, err := imagex.Open(a)
	if err != nil {
		return 0, err
	}
	ib, _, err := imagex.Open(b)
	if err != nil {
		return 0, err
	}
	return RMSE(ia, ib)
}

// Measurement is one entry of a measurement file.
type Measurement struct {
	RMSE float64
}

// Sample is the error of a render after a given rendering time.
type Sample struct {

	// Seconds is the rendering time.
	Seconds int

	// RMSE is the error against the reference.
	RMSE float64
}

// Series is the error of one renderer configuration over time.
type Series struct {

	// Label identifies the configuration.
	Label string

	// Samples are ordered by time.
	Samples []Sample
}

// OpenSeries reads a series from a JSON file that maps rendering times
// in seconds to measurements, such as {"10": {"RMSE": 4.2}, ...}.
// The label is derived from the path with [Label].
func OpenSeries(filename string) (*Series, error) {
	var data map[string]Measurement
	if err := jsonx.Open(&data, filename); err != nil {
		return nil, err
	}
	s := &Series{Label: Label(filename)}
	for k, m := range data {
		sec, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("evaluation.OpenSeries %s: time %q is not a whole number of seconds", filename, k)
		}
		s.Samples = append(s.Samples, Sample{Seconds: sec, RMSE: m.RMSE})
	}
	slices.SortFunc(s.Samples, func(a, b Sample) int { return cmp.Compare(a.Seconds, b.Seconds) })
	return s, nil
}

// Trimmed returns the series without its last sample, which is
// the converged render that the others are compared against.
func (s *Series) Trimmed() *Series {
	n := max(len(s.Samples)-1, 0)
	return &Series{Label: s.Label, Samples: slices.Clone(s.Samples[:n])}
}

// Last returns the last sample, and false if the series is empty.
func (s *Series) Last() (Sample, bool) {
	if len(s.Samples) == 0 {
		return Sample{}, false
	}
	return s.Samples[len(s.Samples)-1], true
}

// Label returns the label of a measurement file, which is the fourth
// dash-separated field of its directory name: the label of
// "weighted-delta-tracking-0.25/rmse.json" is "0.25". Directory names
// with fewer fields are used whole.
func Label(filename string) string {
	dir := filepath.Base(filepath.Dir(filename))
	fields := strings.Split(dir, "-")
	if len(fields) < 4 {
		return dir
	}
	return fields[3]
}

// TTUV returns the time to unit variance of a series rendered for the
// given number of seconds: the error of its last sample times the time.
func TTUV(s *Series, seconds float64) (float64, error) {
	last, ok := s.Last()
	if !ok {
		return 0, fmt.Errorf("evaluation.TTUV: series %q is empty", s.Label)
	}
	return last.RMSE * seconds, nil
}

// Minorant is the error of decomposition tracking for one control extinction.
type Minorant struct {
	Minorant string
	RMSE     float64
}

// OpenMinorants reads a decomposition sweep from a JSON file that maps
// minorant values to measurements. The result is ordered by minorant value
// where the keys are numbers, and by key otherwise.
func OpenMinorants(filename string) ([]Minorant, error) {
	var data map[string]Measurement
	if err := jsonx.Open(&data, filename); err != nil {
		return nil, err
	}
	ms := make([]Minorant, 0, len(data))
	for k, m := range data {
		ms = append(ms, Minorant{Minorant: k, RMSE: m.RMSE})
	}
	slices.SortFunc(ms, func(a, b Minorant) int {
		fa, ea := strconv.ParseFloat(a.Minorant, 64)
		fb, eb := strconv.ParseFloat(b.Minorant, 64)
		if ea == nil && eb == nil && fa != fb {
			return cmp.Compare(fa, fb)
		}
		return cmp.Compare(a.Minorant, b.Minorant)
	})
	return ms, nil
}

// WriteSeriesCSV writes the series as a long table with label,
// seconds and RMSE columns.
func WriteSeriesCSV(w io.Writer, series ...*Series) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"label", "seconds", "rmse"})
	for _, s := range series {
		for _, sm := range s.Samples {
			cw.Write([]string{s.Label, strconv.Itoa(sm.Seconds), strconv.FormatFloat(sm.RMSE, 'g', -1, 64)})
		}
	}
	cw.Flush()
	return cw.Error()
}

// TTUVResult is the time to unit variance of one configuration.
type TTUVResult struct {
	Label string
	TTUV  float64
}

// WriteTTUVCSV writes label and TTUV columns.
func WriteTTUVCSV(w io.Writer, results []TTUVResult) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"label", "ttuv"})
	for _, r := range results {
		cw.Write([]string{r.Label, strconv.FormatFloat(r.TTUV, 'g', -1, 64)})
	}
	cw.Flush()
	return cw.Error()
}

// WriteMinorantsCSV writes minorant and RMSE columns.
func WriteMinorantsCSV(w io.Writer, ms []Minorant) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"minorant", "rmse"})
	for _, m := range ms {
		cw.Write([]string{m.Minorant, strconv.FormatFloat(m.RMSE, 'g', -1, 64)})
	}
	cw.Flush()
	return cw.Error()
}

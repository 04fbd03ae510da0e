// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"github.com/volrend/vpt/cmd/vpt/config"
	"github.com/volrend/vpt/dialogs"
	"github.com/volrend/vpt/evaluation"
	"github.com/volrend/vpt/renderers"
)

// Renderers lists the available renderers and their settings.
func Renderers(c *config.Config) error {
	c.SetLogLevel()
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTYPE\tSETTINGS\tDESCRIPTION")
	for _, t := range renderers.Types() {
		p, err := dialogs.PlanFor(t.Kind)
		if err != nil {
			return err
		}
		settings := ""
		for i, ctl := range p.Controls {
			if i > 0 {
				settings += ", "
			}
			settings += ctl.Label
		}
		if p.TransferFunction {
			settings += ", transfer function"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Kind, t.Name, settings, t.Doc)
	}
	return tw.Flush()
}

// RMSE prints the root mean squared error between two images,
// and saves their difference image if an output file is configured.
func RMSE(c *config.Config) error {
	c.SetLogLevel()
	if c.A == "" || c.B == "" {
		return errors.New("rmse: both -a and -b images are required")
	}
	a, _, err := imagex.Open(c.A)
	if err != nil {
		return err
	}
	b, _, err := imagex.Open(c.B)
	if err != nil {
		return err
	}
	v, err := evaluation.RMSE(a, b)
	if err != nil {
		return err
	}
	fmt.Printf("RMSE (RGB): %g\n", v)
	if c.Out == "" {
		return nil
	}
	d, err := evaluation.Difference(a, b)
	if err != nil {
		return err
	}
	if err := imagex.Save(d, c.Out); err != nil {
		return err
	}
	fmt.Println("Saved", c.Out)
	return nil
}

// Series writes the error over time of the measurement files as CSV,
// without the final converged sample of each.
func Series(c *config.Config) error {
	c.SetLogLevel()
	series, err := openSeries(c)
	if err != nil {
		return err
	}
	for i, s := range series {
		series[i] = s.Trimmed()
	}
	return writeOut(c, func(w io.Writer) error {
		return evaluation.WriteSeriesCSV(w, series...)
	})
}

// TTUV writes the time to unit variance of the measurement files as CSV.
func TTUV(c *config.Config) error {
	c.SetLogLevel()
	series, err := openSeries(c)
	if err != nil {
		return err
	}
	results := make([]evaluation.TTUVResult, 0, len(series))
	for _, s := range series {
		v, err := evaluation.TTUV(s, c.Seconds)
		if err != nil {
			return err
		}
		results = append(results, evaluation.TTUVResult{Label: s.Label, TTUV: v})
	}
	return writeOut(c, func(w io.Writer) error {
		return evaluation.WriteTTUVCSV(w, results)
	})
}

// Minorants writes the decomposition tracking error per minorant as CSV.
func Minorants(c *config.Config) error {
	c.SetLogLevel()
	if c.File == "" {
		return errors.New("minorants: a -file is required")
	}
	ms, err := evaluation.OpenMinorants(c.File)
	if err != nil {
		return err
	}
	return writeOut(c, func(w io.Writer) error {
		return evaluation.WriteMinorantsCSV(w, ms)
	})
}

func openSeries(c *config.Config) ([]*evaluation.Series, error) {
	if len(c.Files) == 0 {
		return nil, errors.New("at least one measurement file is required (-files)")
	}
	series := make([]*evaluation.Series, 0, len(c.Files))
	for _, fn := range c.Files {
		s, err := evaluation.OpenSeries(fn)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return series, nil
}

// writeOut calls write with the configured output file, or standard output.
func writeOut(c *config.Config, write func(w io.Writer) error) error {
	if c.Out == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Println("Saved", c.Out)
	return nil
}

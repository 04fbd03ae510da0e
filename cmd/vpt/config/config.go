// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the vpt command,
// read from flags and an optional vpt.toml file.
package config

import (
	"log/slog"

	"cogentcore.org/core/base/logx"
	"github.com/volrend/vpt/renderers"
)

// Config is the configuration of all vpt commands.
type Config struct {

	// Renderer is the renderer whose settings dialog is opened.
	Renderer renderers.Kind `default:"eam" flag:"r,renderer"`

	// Preset is an optional transfer function preset file
	// (.toml, .json or .yaml) applied to the renderer at startup.
	Preset string `flag:"p,preset"`

	// Watch reloads the preset into the transfer function editor
	// whenever the file changes.
	Watch bool

	// A is the first image compared by rmse.
	A string

	// B is the second image compared by rmse.
	B string

	// Files are the measurement files read by series and ttuv.
	Files []string `flag:"f,files"`

	// File is the decomposition sweep read by minorants.
	File string

	// Seconds is the rendering time used by ttuv.
	Seconds float64 `default:"500"`

	// Out is the CSV output file of series, ttuv and minorants;
	// standard output if empty. For rmse, it is the difference image.
	Out string `flag:"o,out"`

	// VeryVerbose shows debug messages.
	VeryVerbose bool `flag:"vv,very-verbose"`

	// Verbose shows info messages.
	Verbose bool `flag:"v,verbose"`

	// Quiet only shows errors.
	Quiet bool `flag:"q,quiet"`
}

// SetLogLevel sets the log level from the verbosity flags.
func (c *Config) SetLogLevel() {
	logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
	slog.SetLogLoggerLevel(logx.UserLevel)
}

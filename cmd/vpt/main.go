// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vpt opens the settings dialogs of the volumetric path tracing
// renderers and evaluates their renders.
package main

import (
	"cogentcore.org/core/cli"
	"github.com/volrend/vpt/cmd/vpt/cmd"
	"github.com/volrend/vpt/cmd/vpt/config"
)

type command = cli.Cmd[*config.Config]

func main() {
	opts := cli.DefaultOptions("vpt", "Volumetric path tracing renderer settings and evaluation.")
	opts.DefaultFiles = []string{"vpt.toml"}
	cli.Run(opts, &config.Config{},
		&command{Func: cmd.View, Name: "view", Root: true,
			Doc: "View opens the settings dialog of a renderer, optionally with a transfer function preset that can be watched for changes."},
		&command{Func: cmd.Renderers, Name: "renderers",
			Doc: "Renderers lists the available renderers and their settings."},
		&command{Func: cmd.RMSE, Name: "rmse",
			Doc: "RMSE prints the root mean squared error between two images."},
		&command{Func: cmd.Series, Name: "series",
			Doc: "Series writes the error over time of measurement files as CSV."},
		&command{Func: cmd.TTUV, Name: "ttuv",
			Doc: "TTUV writes the time to unit variance of measurement files as CSV."},
		&command{Func: cmd.Minorants, Name: "minorants",
			Doc: "Minorants writes the decomposition tracking error per minorant as CSV."},
	)
}

// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the vpt commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/core/core"
	"github.com/volrend/vpt/cmd/vpt/config"
	"github.com/volrend/vpt/dialogs"
	"github.com/volrend/vpt/renderers"
	"github.com/volrend/vpt/transfer"
)

// View opens a window with the settings of the configured renderer.
func View(c *config.Config) error {
	c.SetLogLevel()
	r, err := NewRenderer(c)
	if err != nil {
		return err
	}
	b := core.NewBody(dialogs.Title(r.Kind()))
	d, err := dialogs.Build(b, r)
	if err != nil {
		return err
	}
	if c.Watch && d.Editor != nil && c.Preset != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		err := transfer.Watch(ctx, c.Preset, func(tf *transfer.Function) {
			d.Editor.AsyncLock()
			d.Editor.SetTransferFunction(tf).UpdateChange()
			d.Editor.AsyncUnlock()
		})
		if err != nil {
			return fmt.Errorf("watching preset: %w", err)
		}
	}
	slog.Info("opening renderer settings", "renderer", r.Kind())
	b.RunMainWindow()
	return nil
}

// NewRenderer returns a new renderer of the configured kind,
// with the configured transfer function preset if there is one.
func NewRenderer(c *config.Config) (renderers.Renderer, error) {
	t, err := renderers.Resolve(c.Renderer)
	if err != nil {
		return nil, err
	}
	r := t.New()
	if c.Preset == "" {
		return r, nil
	}
	tfs, ok := r.(renderers.TransferFunctionSetter)
	if !ok {
		return nil, fmt.Errorf("%s renderer does not use a transfer function preset", r.Kind())
	}
	tf, err := transfer.Open(c.Preset)
	if err != nil {
		return nil, err
	}
	tfs.SetTransferFunction(tf)
	return r, nil
}

// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Open reads a transfer function preset from the given file.
// The format is chosen by extension: .toml, .json, .yaml or .yml.
func Open(filename string) (*Function, error) {
	tf := &Function{}
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(tf, filename)
	case ".json":
		err = jsonx.Open(tf, filename)
	case ".yaml", ".yml":
		var b []byte
		b, err = os.ReadFile(filename)
		if err == nil {
			err = yaml.Unmarshal(b, tf)
		}
	default:
		return nil, fmt.Errorf("transfer.Open: unsupported preset format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("transfer.Open %s: %w", filename, err)
	}
	return tf, nil
}

// Save writes the transfer function as a preset to the given file,
// in the format given by its extension (see [Open]).
func Save(tf *Function, filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Save(tf, filename)
	case ".json":
		return jsonx.Save(tf, filename)
	case ".yaml", ".yml":
		b, err := yaml.Marshal(tf)
		if err != nil {
			return err
		}
		return os.WriteFile(filename, b, 0666)
	default:
		return fmt.Errorf("transfer.Save: unsupported preset format %q", ext)
	}
}

// Watch calls fun with the reloaded preset every time the given preset
// file is written, until ctx is done. The directory is watched rather
// than the file so that editors that save by renaming are picked up.
// fun is called on the watcher goroutine.
func Watch(ctx context.Context, filename string, fun func(tf *Function)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	filename = filepath.Clean(filename)
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return err
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filename || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				tf, err := Open(filename)
				if errors.Log(err) != nil {
					continue
				}
				slog.Info("reloaded transfer function preset", "file", filename, "bumps", len(tf.Bumps))
				fun(tf)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("transfer function preset watcher", "file", filename, "err", err)
			}
		}
	}()
	return nil
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// watchAndRediff re-runs diffOnce every time fromPath or toPath changes on
// disk, until ctx is canceled. Each event is handled synchronously in the
// goroutine that drains the watcher's channel; there is no shared mutable
// state between re-diffs.
func watchAndRediff(ctx context.Context, fromPath, toPath string, diffOnce func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("godiff: starting watcher: %w", err)
	}
	defer watcher.Close()

	for _, p := range []string{fromPath, toPath} {
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("godiff: watching %s: %w", p, err)
		}
	}

	if err := diffOnce(); err != nil {
		slog.Error("initial diff failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Info("file changed, re-diffing", "path", event.Name)
			if err := diffOnce(); err != nil {
				slog.Error("diff failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "error", err)
		}
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/diff/unifieddiff"
)

var diffCmd = &cobra.Command{
	Use:   "diff <fromfile> <tofile>",
	Short: "print a unified diff between two files",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

var diffFlags struct {
	context   int
	labelFrom string
	labelTo   string
	color     string
	watch     bool
	config    string
}

func init() {
	f := diffCmd.Flags()
	f.IntVarP(&diffFlags.context, "unified", "u", -1, "lines of context (default from config, else 3)")
	f.StringVar(&diffFlags.labelFrom, "label-from", "", "label for the first file in the header (defaults to its path)")
	f.StringVar(&diffFlags.labelTo, "label-to", "", "label for the second file in the header (defaults to its path)")
	f.StringVar(&diffFlags.color, "color", "", "auto, always, or never (defaults from config, else auto)")
	f.BoolVar(&diffFlags.watch, "watch", false, "re-run the diff whenever either file changes")
	f.StringVar(&diffFlags.config, "config", "godiff.toml", "path to the config file")
}

func runDiff(cmd *cobra.Command, args []string) error {
	fromPath, toPath := args[0], args[1]

	cfg, err := loadConfig(diffFlags.config)
	if err != nil {
		return err
	}
	if diffFlags.context >= 0 {
		cfg.Context = diffFlags.context
	}
	color := diffFlags.color
	if color == "" {
		color = cfg.Color
	}
	switch color {
	case "auto", "always", "never":
	default:
		return usageError(fmt.Errorf("--color must be auto, always, or never, got %q", color))
	}

	labelFrom, labelTo := diffFlags.labelFrom, diffFlags.labelTo
	if labelFrom == "" {
		labelFrom = fromPath
	}
	if labelTo == "" {
		labelTo = toPath
	}

	// cfg.Context == 0 is an explicit request for no context; unifieddiff's
	// zero value means "use the default" instead, so it needs NoContext.
	context := cfg.Context
	if context == 0 {
		context = unifieddiff.NoContext
	}

	opts := unifieddiff.Options{
		FromFile: labelFrom,
		ToFile:   labelTo,
		N:        context,
		LineTerm: cfg.LineTerm,
	}

	enabled := colorMode(color, termenv.NewOutput(cmd.OutOrStdout()).Profile())

	diffOnce := func() error {
		return diffFiles(cmd, fromPath, toPath, opts, enabled)
	}

	if !diffFlags.watch {
		return diffOnce()
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return watchAndRediff(ctx, fromPath, toPath, diffOnce)
}

func diffFiles(cmd *cobra.Command, fromPath, toPath string, opts unifieddiff.Options, colorEnabled bool) error {
	fromData, err := os.ReadFile(fromPath)
	if err != nil {
		return fileError(fmt.Errorf("reading %s: %w", fromPath, err))
	}
	toData, err := os.ReadFile(toPath)
	if err != nil {
		return fileError(fmt.Errorf("reading %s: %w", toPath, err))
	}
	slog.Debug("diffing files", "from", fromPath, "to", toPath, "context", opts.N)

	from := unifieddiff.SplitLines(string(fromData))
	to := unifieddiff.SplitLines(string(toData))

	text, err := unifieddiff.Format(from, to, opts)
	if err != nil {
		return fmt.Errorf("formatting diff: %w", err)
	}
	if text == "" {
		return nil
	}
	return writeColorized(cmd.OutOrStdout(), strings.NewReader(text), colorEnabled)
}

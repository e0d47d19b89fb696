// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// exit codes, distinguishing usage mistakes and file-access failures from
// the generic fallback so scripts calling godiff can branch on them.
const (
	exitOK        = 0
	exitGeneral   = 1
	exitFileError = 2
	exitUsage     = 64
)

var rootCmd = &cobra.Command{
	Use:           "godiff",
	Short:         "godiff prints a unified diff between two files",
	Long:          `godiff is a line-oriented diff tool built on a generalized port of Python's difflib.SequenceMatcher.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}
	rootCmd.AddCommand(diffCmd, versionCmd)
}

// Execute runs the command tree, translating a returned *cliError into the
// matching process exit code and any other error into exitGeneral.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "godiff:", err)
		code := exitGeneral
		var ce *cliError
		if errors.As(err, &ce) {
			code = ce.code
		}
		os.Exit(code)
	}
}

// cliError pairs an error with the process exit code it should produce.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func fileError(err error) error  { return &cliError{exitFileError, err} }
func usageError(err error) error { return &cliError{exitUsage, err} }

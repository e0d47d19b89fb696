// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print godiff's build version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), buildVersion())
		return nil
	},
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "godiff (unknown version)"
	}
	return fmt.Sprintf("godiff %s", info.Main.Version)
}

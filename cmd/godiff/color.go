// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// colorMode resolves the --color flag ("auto", "always", "never") against
// the output stream's detected color profile.
func colorMode(mode string, profile termenv.Profile) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return profile != termenv.Ascii
	}
}

// writeColorized copies a unified diff from r to w, colorizing added,
// removed, and hunk-header lines the way a terminal-aware `diff` does.
// Lines are passed through unchanged when color is disabled.
func writeColorized(w io.Writer, r io.Reader, enabled bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if enabled {
			line = colorizeLine(line)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func colorizeLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---"):
		return termenv.String(line).Bold().String()
	case strings.HasPrefix(line, "@@"):
		return termenv.String(line).Foreground(termenv.ANSICyan).String()
	case strings.HasPrefix(line, "+"):
		return termenv.String(line).Foreground(termenv.ANSIGreen).String()
	case strings.HasPrefix(line, "-"):
		return termenv.String(line).Foreground(termenv.ANSIRed).String()
	default:
		return line
	}
}

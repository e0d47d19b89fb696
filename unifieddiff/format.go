// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unifieddiff

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/diff/diff"
)

// Format compares a and b, already split into lines (see [SplitLines]), and
// returns their unified diff as a string. It returns "" if a and b are
// identical.
func Format(a, b []string, opts Options) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, a, b, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write compares a and b and writes their unified diff to w.
func Write(w io.Writer, a, b []string, opts Options) error {
	eol := opts.lineTerm()
	m := diff.NewMatcher(a, b)

	started := false
	for _, g := range m.GetGroupedOpCodes(opts.contextLines()) {
		if !started {
			started = true
			if err := writeHeaderLine(w, "---", opts.FromFile, opts.FromDate, eol); err != nil {
				return err
			}
			if err := writeHeaderLine(w, "+++", opts.ToFile, opts.ToDate, eol); err != nil {
				return err
			}
		}

		first, last := g[0], g[len(g)-1]
		range1 := formatRange(first.I1, last.I2)
		range2 := formatRange(first.J1, last.J2)
		if _, err := fmt.Fprintf(w, "@@ -%s +%s @@%s", range1, range2, eol); err != nil {
			return err
		}

		for _, c := range g {
			if err := writeHunkLines(w, a, b, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeHeaderLine(w io.Writer, marker, file, date, eol string) error {
	if date != "" {
		date = "\t" + date
	}
	_, err := fmt.Fprintf(w, "%s %s%s%s", marker, file, date, eol)
	return err
}

func writeHunkLines(w io.Writer, a, b []string, c diff.OpCode) error {
	switch c.Tag {
	case diff.Equal:
		return writePrefixed(w, " ", a[c.I1:c.I2])
	case diff.Delete:
		return writePrefixed(w, "-", a[c.I1:c.I2])
	case diff.Insert:
		return writePrefixed(w, "+", b[c.J1:c.J2])
	case diff.Replace:
		if err := writePrefixed(w, "-", a[c.I1:c.I2]); err != nil {
			return err
		}
		return writePrefixed(w, "+", b[c.J1:c.J2])
	}
	return nil
}

func writePrefixed(w io.Writer, prefix string, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, prefix); err != nil {
			return err
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

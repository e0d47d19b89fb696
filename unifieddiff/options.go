// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unifieddiff

// NoContext requests a hunk with no surrounding Equal context lines. It must
// be used explicitly for that purpose: the zero value of [Options.N] means
// "use the default" rather than "no context", so a bare 0 cannot serve both
// roles.
const NoContext = -1

// Options controls the headers and hunk framing of a unified diff.
type Options struct {
	// FromFile and ToFile label the "---"/"+++" header lines, printed once
	// before the first hunk whenever the diff is non-empty, even if both are
	// left as the empty string.
	FromFile, ToFile string

	// FromDate and ToDate, if non-empty, are appended to the header lines
	// after a tab, conventionally an ISO 8601 timestamp.
	FromDate, ToDate string

	// N is the number of lines of Equal context kept on either side of a
	// hunk. The zero value selects the difflib default of 3, the same
	// default [diff.GroupedOpCodes] falls back to for a negative n; use
	// [NoContext] to request zero lines of context explicitly.
	N int

	// LineTerm terminates the "---", "+++", and "@@" control lines. An
	// empty LineTerm defaults to "\n". Body lines carry their own
	// terminator as part of the line text (see [SplitLines]), so LineTerm
	// does not affect them.
	LineTerm string
}

func (o Options) lineTerm() string {
	if o.LineTerm == "" {
		return "\n"
	}
	return o.LineTerm
}

func (o Options) contextLines() int {
	switch o.N {
	case 0:
		return 3
	case NoContext:
		return 0
	default:
		return o.N
	}
}

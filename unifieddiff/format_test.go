// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unifieddiff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "5", formatRange(4, 5), "length 1 drops the comma form")
	assert.Equal(t, "4,0", formatRange(4, 4), "an empty range starts one line earlier")
	assert.Equal(t, "5,3", formatRange(4, 7), "length >1 uses the start,length form")
}

func TestSplitLinesAddsMissingFinalNewline(t *testing.T) {
	assert.Equal(t, []string{"a\n", "b\n", "c\n"}, SplitLines("a\nb\nc\n"))
	assert.Equal(t, []string{"a\n", "b\n", "c\n"}, SplitLines("a\nb\nc"))
	assert.Nil(t, SplitLines(""))
}

// scenario S1: identical inputs produce no output.
func TestFormatIdenticalInputsEmpty(t *testing.T) {
	lines := SplitLines("one\ntwo\nthree\n")
	got, err := Format(lines, lines, Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

// scenario S2: a single line changed in the middle of a larger file produces
// one hunk with 3 lines of context on each side by default.
func TestFormatSingleLineChangeOneHunk(t *testing.T) {
	var from, to []string
	for i := 1; i <= 10; i++ {
		from = append(from, "line\n")
		to = append(to, "line\n")
	}
	from[4] = "old\n"
	to[4] = "new\n"

	got, err := Format(from, to, Options{FromFile: "a.txt", ToFile: "b.txt", N: 3})
	require.NoError(t, err)

	want := strings.Join([]string{
		"--- a.txt\n",
		"+++ b.txt\n",
		"@@ -2,7 +2,7 @@\n",
		" line\n",
		" line\n",
		" line\n",
		"-old\n",
		"+new\n",
		" line\n",
		" line\n",
		" line\n",
	}, "")
	assert.Equal(t, want, got)
}

// scenario S4: a pure insertion shows the added line as "+", framed by the
// unchanged lines around it, so the "before" range covers those context lines.
func TestFormatPureInsertion(t *testing.T) {
	from := SplitLines("a\nb\n")
	to := SplitLines("a\nx\nb\n")
	got, err := Format(from, to, Options{N: 3})
	require.NoError(t, err)
	assert.Contains(t, got, "@@ -1,2 +1,3 @@\n")
	assert.Contains(t, got, "+x\n")
}

// scenario S5: a pure deletion shows the removed line as "-", framed by the
// unchanged lines around it, so the "after" range covers those context lines.
func TestFormatPureDeletion(t *testing.T) {
	from := SplitLines("a\nx\nb\n")
	to := SplitLines("a\nb\n")
	got, err := Format(from, to, Options{N: 3})
	require.NoError(t, err)
	assert.Contains(t, got, "@@ -1,3 +1,2 @@\n")
	assert.Contains(t, got, "-x\n")
}

// scenario S3: two well-separated changes in a large file produce two
// distinct hunks rather than one hunk spanning the whole file.
func TestFormatTwoSeparatedChangesTwoHunks(t *testing.T) {
	var from, to []string
	for i := 0; i < 60; i++ {
		from = append(from, "line\n")
		to = append(to, "line\n")
	}
	from[5], to[5] = "first-old\n", "first-new\n"
	from[50], to[50] = "second-old\n", "second-new\n"

	got, err := Format(from, to, Options{N: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(got, "@@ -"))
}

func TestFormatHeaderPrintedEvenWhenFilesUnset(t *testing.T) {
	from := SplitLines("a\nb\n")
	to := SplitLines("a\nc\n")
	got, err := Format(from, to, Options{N: 3})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "--- \n+++ \n@@"))
}

func TestFormatHeaderWithDates(t *testing.T) {
	from := SplitLines("a\n")
	to := SplitLines("b\n")
	got, err := Format(from, to, Options{
		FromFile: "a.txt", FromDate: "2026-01-01",
		ToFile: "b.txt", ToDate: "2026-01-02",
		N: 3,
	})
	require.NoError(t, err)
	assert.Contains(t, got, "--- a.txt\t2026-01-01\n")
	assert.Contains(t, got, "+++ b.txt\t2026-01-02\n")
}

func TestFormatEmptyLineTermDefaultsToNewline(t *testing.T) {
	from := SplitLines("a\nb\n")
	to := SplitLines("a\nc\n")
	got, err := Format(from, to, Options{N: 3, LineTerm: ""})
	require.NoError(t, err)
	assert.Contains(t, got, "@@ -1,2 +1,2 @@\n")
}

// The zero value of Options.N must select the spec default of 3 lines of
// context, the same as explicitly passing N: 3, since Options{} is the
// natural zero-value construction for a caller that wants default framing.
func TestFormatZeroValueNDefaultsToThreeLinesContext(t *testing.T) {
	var from, to []string
	for i := 1; i <= 10; i++ {
		from = append(from, "line\n")
		to = append(to, "line\n")
	}
	from[4] = "old\n"
	to[4] = "new\n"

	gotDefault, err := Format(from, to, Options{})
	require.NoError(t, err)
	gotExplicit, err := Format(from, to, Options{N: 3})
	require.NoError(t, err)
	assert.Equal(t, gotExplicit, gotDefault)
	assert.Contains(t, gotDefault, "@@ -2,7 +2,7 @@\n")
}

func TestFormatNoContextOmitsSurroundingLines(t *testing.T) {
	from := SplitLines("a\nb\nc\nd\ne\n")
	to := SplitLines("a\nb\nC\nd\ne\n")
	got, err := Format(from, to, Options{N: NoContext})
	require.NoError(t, err)
	want := "--- \n+++ \n@@ -3 +3 @@\n-c\n+C\n"
	assert.Equal(t, want, got)
}

func TestWriteMatchesFormat(t *testing.T) {
	from := SplitLines("a\nb\nc\n")
	to := SplitLines("a\nB\nc\n")
	var sb strings.Builder
	require.NoError(t, Write(&sb, from, to, Options{N: 3}))
	want, err := Format(from, to, Options{N: 3})
	require.NoError(t, err)
	assert.Equal(t, want, sb.String())
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unifieddiff renders the opcodes produced by package diff as
// Unified Diff text, the format `diff -u` and `git diff` emit. It owns
// nothing about how the lines were matched; it only groups, formats, and
// prints what a [diff.SequenceMatcher] already computed.
package unifieddiff

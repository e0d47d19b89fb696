// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

// Tag discriminates the kind of edit an [OpCode] describes. It is a small
// integer enum rather than a string or byte character: the string form used
// by some difflib ports is incidental to that implementation and carries no
// semantic content of its own.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Tag
type Tag int8

const (
	// Equal means a[I1:I2] equals b[J1:J2]; I2-I1 == J2-J1, which is > 0
	// except for the empty context ops [GroupedOpCodes] emits when n is 0.
	Equal Tag = iota
	// Delete means a[I1:I2] was removed; J1 == J2.
	Delete
	// Insert means b[J1:J2] was inserted at a[I1:I1]; I1 == I2.
	Insert
	// Replace means a[I1:I2] was replaced by b[J1:J2]; both sides non-empty.
	Replace
)

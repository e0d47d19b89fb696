// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"errors"
	"fmt"
)

// ErrInvalidWindow is the sentinel wrapped into the panic value raised by
// [FindLongestMatch] when it is called with a window that violates its
// precondition (0 <= alo <= ahi <= len(a), 0 <= blo <= bhi <= len(b)).
//
// A bad window is a programming error in the caller, not a recoverable
// runtime condition, so it is reported the same way an out-of-range slice
// index is: by panicking rather than by returning an error.
var ErrInvalidWindow = errors.New("diff: invalid window")

// invalidWindowError carries the offending bounds alongside [ErrInvalidWindow]
// so a recovered panic can report exactly what was wrong.
type invalidWindowError struct {
	alo, ahi, blo, bhi, m, n int
}

func (e *invalidWindowError) Error() string {
	return fmt.Sprintf("%s: a[%d:%d] (len %d), b[%d:%d] (len %d)",
		ErrInvalidWindow, e.alo, e.ahi, e.m, e.blo, e.bhi, e.n)
}

func (e *invalidWindowError) Unwrap() error {
	return ErrInvalidWindow
}

func checkWindow(alo, ahi, blo, bhi, m, n int) {
	if alo < 0 || alo > ahi || ahi > m || blo < 0 || blo > bhi || bhi > n {
		panic(&invalidWindowError{alo, ahi, blo, bhi, m, n})
	}
}

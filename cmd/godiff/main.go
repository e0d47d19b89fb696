// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command godiff prints a unified diff between two files.
package main

func main() {
	Execute()
}

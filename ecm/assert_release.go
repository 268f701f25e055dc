//go:build release

package ecm

import "fmt"

// This file has no retrieved counterpart: the corpus's dev/release assert
// split (assert_dev.go) only ships the dev half. The panic-without-logging
// release behavior below follows from ASSERT's own doc comment ("release
// builds abort" per SPEC_FULL.md §6) rather than from a cited release file.

func assertImpl(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(fmt.Sprintf(format, args...))
}

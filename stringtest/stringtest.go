// Package stringtest provides helpers for constructing multi-line test
// fixtures and expected output with explicit line endings.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
//
// Example:
//
//	src := stringtest.JoinLF(
//		";;; foo.el --- Example",
//		";;; Commentary:",
//	) // -> ";;; foo.el --- Example\n;;; Commentary:"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinLFn joins multiple strings with LF line endings and appends a final
// LF. Use this for expected output of line-oriented writers, which always
// terminate the last line.
//
// Example:
//
//	want := stringtest.JoinLFn(
//		"# Title",
//		"",
//		"Body",
//	) // -> "# Title\n\nBody\n"
func JoinLFn(ss ...string) string {
	return strings.Join(ss, "\n") + "\n"
}

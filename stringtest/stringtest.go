// Package stringtest builds expected output for tests of line-oriented
// writers.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//	) // -> "line1\nline2"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// Lines terminates every string with LF, matching what a logger writes for
// a sequence of records. No arguments yield the empty string.
//
// Example:
//
//	want := stringtest.Lines(
//		"I: started",
//		"I: done",
//	) // -> "I: started\nI: done\n"
func Lines(ss ...string) string {
	var sb strings.Builder
	for _, s := range ss {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// SplitLines is the inverse of [Lines]: it splits s on LF and drops the
// empty element after a trailing newline.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

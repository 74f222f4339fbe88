package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/termlog/stringtest"
)

func TestJoinLF(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input []string
		want  string
	}{
		"no strings": {
			input: nil,
			want:  "",
		},
		"single string": {
			input: []string{"hello"},
			want:  "hello",
		},
		"multiple strings": {
			input: []string{"line1", "line2", "line3"},
			want:  "line1\nline2\nline3",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.JoinLF(tc.input...))
		})
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input []string
		want  string
	}{
		"no lines": {
			input: nil,
			want:  "",
		},
		"single line": {
			input: []string{"I: hello"},
			want:  "I: hello\n",
		},
		"multiple lines": {
			input: []string{"E: a", "W: b"},
			want:  "E: a\nW: b\n",
		},
		"empty line kept": {
			input: []string{""},
			want:  "\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := stringtest.Lines(tc.input...)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []string
	}{
		"empty": {
			input: "",
			want:  nil,
		},
		"trailing newline": {
			input: "a\nb\n",
			want:  []string{"a", "b"},
		},
		"no trailing newline": {
			input: "a\nb",
			want:  []string{"a", "b"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.SplitLines(tc.input))
		})
	}
}

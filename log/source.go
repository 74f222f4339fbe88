package log

import (
	"net/url"
	"path"
	"runtime"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	fileColumnWidth = 10
	lineColumnWidth = 3
)

// callerFrame resolves the frame for a record PC. The zero frame is returned
// when pc is zero.
func callerFrame(pc uintptr) runtime.Frame {
	if pc == 0 {
		return runtime.Frame{}
	}

	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()

	return f
}

// packagePath returns the import path of the package that defines fn, where
// fn is a fully qualified function name such as "example.com/a/b.(*T).M".
//
// The runtime escapes dots in the last path element ("gopkg.in/yaml%2ev3"),
// so that element is unescaped before returning.
func packagePath(fn string) string {
	if i := strings.IndexByte(fn, '['); i >= 0 {
		fn = fn[:i]
	}

	slash := strings.LastIndexByte(fn, '/')

	pkg := fn
	if dot := strings.IndexByte(fn[slash+1:], '.'); dot >= 0 {
		pkg = fn[:slash+1+dot]
	}

	last, err := url.PathUnescape(pkg[slash+1:])
	if err != nil {
		return pkg
	}

	return pkg[:slash+1] + last
}

// inModule reports whether the function fn belongs to module or one of its
// subpackages. External test packages count as the package they test.
func inModule(fn, module string) bool {
	if module == "" {
		return true
	}

	pkg := strings.TrimSuffix(packagePath(fn), "_test")

	return pkg == module || strings.HasPrefix(pkg, module+"/")
}

// appendLocation appends the "file:line" column for the verbose format.
//
// The file field is right-aligned in fileColumnWidth columns and the line is
// zero-padded to lineColumnWidth digits. Each extra line digit takes one
// column from the file field. Names longer than their field keep the tail.
func appendLocation(buf []byte, file string, line int) []byte {
	fileWidth, lineWidth := fileColumnWidth, lineColumnWidth
	for extra := line / 1000; extra > 0 && fileWidth > 0; extra /= 10 {
		fileWidth--
		lineWidth++
	}

	name := path.Base(file)
	if len(name) > fileWidth {
		cut := len(name) - fileWidth
		for cut < len(name) && !utf8.RuneStart(name[cut]) {
			cut++
		}

		name = name[cut:]
	}

	// Pad by columns, one per rune.
	for range fileWidth - utf8.RuneCountInString(name) {
		buf = append(buf, ' ')
	}

	buf = append(buf, name...)
	buf = append(buf, ':')

	digits := strconv.Itoa(line)
	for range lineWidth - len(digits) {
		buf = append(buf, '0')
	}

	return append(buf, digits...)
}

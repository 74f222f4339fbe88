package log

import "runtime"

// ResetInstalled frees the install slot so each test can call Init.
func ResetInstalled() {
	installed.Store(false)
}

// ResetPrefix clears any active prefix.
func ResetPrefix() {
	activePrefix.Store(nil)
}

func AppendLocation(file string, line int) string {
	return string(appendLocation(nil, file, line))
}

func PackagePath(fn string) string {
	return packagePath(fn)
}

func InModule(fn, module string) bool {
	return inModule(fn, module)
}

func TargetAllows(module string, level, rec Level, function string) bool {
	return target{module: module, level: level}.allows(rec, runtime.Frame{Function: function})
}

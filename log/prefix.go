package log

import (
	"errors"
	"sync/atomic"
)

// ErrNestedPrefix is returned when a [Prefix] is set while another one is
// still active.
var ErrNestedPrefix = errors.New("prefix already set")

var activePrefix atomic.Pointer[Prefix]

// Prefix is a process-wide "[name] " marker inserted after the level tag of
// every cli-format line while it is active. Only one Prefix can be active at
// a time.
//
// Create instances with [SetPrefix] or [SetPrefixFor].
type Prefix struct {
	text     string
	minLevel Level
}

// SetPrefix activates a prefix shown at every configured level.
func SetPrefix(name string) (*Prefix, error) {
	return SetPrefixFor(LevelError, name)
}

// SetPrefixFor activates a prefix shown only by handlers configured at
// minLevel or a more verbose level.
//
//	p, err := log.SetPrefixFor(log.LevelDebug, "worker-3")
//	if err != nil {
//	    return err
//	}
//	defer p.Clear()
func SetPrefixFor(minLevel Level, name string) (*Prefix, error) {
	p := &Prefix{
		text:     "[" + name + "] ",
		minLevel: minLevel,
	}

	if !activePrefix.CompareAndSwap(nil, p) {
		return nil, ErrNestedPrefix
	}

	return p, nil
}

// Clear deactivates p. Clearing an inactive prefix does nothing.
func (p *Prefix) Clear() {
	activePrefix.CompareAndSwap(p, nil)
}

// appendPrefix appends the active prefix, if any, for a handler configured
// at level.
func appendPrefix(buf []byte, level Level) []byte {
	p := activePrefix.Load()
	if p == nil || level < p.minLevel {
		return buf
	}

	return append(buf, p.text...)
}

//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var contexts sync.Map

// Current returns the reactive context of the calling goroutine,
// creating it on first use.
func Current() *Context {
	gid := goid.Get()

	if c, ok := contexts.Load(gid); ok {
		return c.(*Context)
	}

	c := NewContext()
	contexts.Store(gid, c)
	return c
}

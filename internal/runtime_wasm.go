//go:build wasm

package internal

import "sync"

var once sync.Once
var globalContext *Context

func Current() *Context {
	once.Do(func() {
		globalContext = NewContext()
	})

	return globalContext
}

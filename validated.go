// Package validated provides a reactive validated-value cell for declarative
// UIs: a mutable value bound to a validation rule, with derived validity,
// change-tracking and error-message state that watchers re-run on.
package validated

import "github.com/tuan188/validated/internal"

// WatchComputation is either a plain computation or a computation that
// returns a cleanup function.
type WatchComputation interface {
	func() | func() func()
}

type Watcher struct {
	watcher *internal.Watcher
}

// Watch runs the computation immediately and re-runs it whenever a cell it
// read changes. If the computation returns a cleanup function, it is called
// before each re-run and on disposal.
func Watch[T WatchComputation](computation T) *Watcher {
	var compute func() func()

	switch fn := any(computation).(type) {
	case func():
		compute = func() func() {
			fn()
			return nil
		}
	case func() func():
		compute = fn
	}

	return &Watcher{internal.NewWatcher(internal.Current(), compute)}
}

// Dispose stops the watcher and runs its pending cleanup.
func (w *Watcher) Dispose() { w.watcher.Dispose() }

// Batch coalesces cell writes into a single update cycle: watchers run once
// after the outermost batch completes, instead of after each write.
func Batch(fn func()) {
	internal.Current().Batch(fn)
}

// Untrack runs the given function without subscribing to any cell it reads.
func Untrack[T any](fn func() T) T {
	var result T
	internal.Current().RunUntracked(func() { result = fn() })
	return result
}

// OnCleanup registers a function to be called when the current owner is
// disposed, or before the enclosing watcher re-runs.
func OnCleanup(fn func()) {
	internal.Current().CurrentOwner().OnCleanup(fn)
}

type Owner struct {
	owner *internal.Owner
}

// NewOwner creates an owner scope. Watchers created within Run are disposed
// when Dispose is called.
func NewOwner() *Owner {
	ctx := internal.Current()

	o := internal.NewOwner(ctx.CurrentOwner())
	ctx.CurrentOwner().AddChild(o)

	return &Owner{o}
}

// Run executes fn within the scope of this owner.
func (o *Owner) Run(fn func()) {
	internal.Current().RunWithOwner(o.owner, fn)
}

// Dispose this owner and everything created within it.
func (o *Owner) Dispose() { o.owner.Dispose() }

// OnCleanup registers a function to be called when the owner is disposed.
func (o *Owner) OnCleanup(fn func()) { o.owner.OnCleanup(fn) }

package internal

// Watcher re-runs a computation whenever one of the sources it read during
// its last run is invalidated. The computation may return a cleanup function
// which runs before the next execution and on disposal.
type Watcher struct {
	ctx *Context

	// owner collects nested watchers and OnCleanup callbacks registered
	// while the computation runs
	owner *Owner

	deps []*Source

	compute func() func()
	cleanup func()

	disposed bool
}

func NewWatcher(ctx *Context, compute func() func()) *Watcher {
	w := &Watcher{
		ctx:     ctx,
		owner:   NewOwner(ctx.CurrentOwner()),
		compute: compute,
	}
	ctx.CurrentOwner().AddChild(w)

	w.Execute()

	return w
}

func (w *Watcher) AddDependency(s *Source) {
	w.deps = append(w.deps, s)
}

func (w *Watcher) RemoveDependency(s *Source) {
	for i, dep := range w.deps {
		if dep == s {
			w.deps = append(w.deps[:i], w.deps[i+1:]...)
			return
		}
	}
}

// clean runs the cleanup function, unsubscribes from every dependency and
// disposes anything created during the last run.
func (w *Watcher) clean() {
	if w.cleanup != nil {
		w.cleanup()
		w.cleanup = nil
	}

	deps := w.deps
	w.deps = nil
	for _, dep := range deps {
		dep.Untrack(w)
	}

	w.owner.Dispose()
}

func (w *Watcher) Execute() {
	if w.disposed {
		return
	}

	w.clean()

	w.ctx.RunWithObserver(w, w.owner, func() {
		w.cleanup = w.compute()
	})
}

// Dispose stops the watcher permanently.
func (w *Watcher) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true

	w.clean()

	if w.owner.parent != nil {
		w.owner.parent.RemoveChild(w)
	}
}

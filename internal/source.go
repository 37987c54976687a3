package internal

import "slices"

// Observer is a computation that re-runs whenever a source it read changes.
type Observer interface {
	// Execute runs the observer's computation.
	Execute()

	// AddDependency registers a source this observer read during its last run.
	AddDependency(s *Source)

	// RemoveDependency removes a source from this observer's dependencies.
	RemoveDependency(s *Source)
}

// Source is the observable side of a state cell. It keeps the list of
// observers that read the cell during their last run.
type Source struct {
	observers []Observer
}

func NewSource() *Source {
	return &Source{}
}

// Track subscribes the context's active observer to this source.
func (s *Source) Track(ctx *Context) {
	if !ctx.ShouldTrack() {
		return
	}

	obs := ctx.activeObserver
	if !slices.Contains(s.observers, obs) {
		s.observers = append(s.observers, obs)
		obs.AddDependency(s)
	}
}

func (s *Source) Untrack(obs Observer) {
	if index := slices.Index(s.observers, obs); index != -1 {
		s.observers = slices.Delete(s.observers, index, index+1)
		obs.RemoveDependency(s)
	}
}

// Invalidate queues every subscribed observer for re-execution.
// The caller must have fully committed its new state before invalidating,
// so no observer can see a half-updated cell.
func (s *Source) Invalidate(ctx *Context) {
	// clonning to avoid mutation during iteration
	observers := slices.Clone(s.observers)

	for _, obs := range observers {
		ctx.queue(obs)
	}
}

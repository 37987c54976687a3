package internal

import "slices"

type Disposable interface {
	Dispose()
}

// Owner manages the lifecycle of watchers and cleanup functions created
// within its scope. Disposing an owner disposes its children first, then
// runs its cleanups.
type Owner struct {
	parent   *Owner
	children []Disposable

	// cleanup functions to be called when the owner is disposed
	cleanups []func()
}

func NewOwner(parent *Owner) *Owner {
	return &Owner{parent: parent}
}

func (o *Owner) AddChild(child Disposable) {
	if !slices.Contains(o.children, child) {
		o.children = append(o.children, child)
	}
}

func (o *Owner) RemoveChild(child Disposable) {
	if index := slices.Index(o.children, child); index != -1 {
		o.children = slices.Delete(o.children, index, index+1)
	}
}

func (o *Owner) OnCleanup(fn func()) {
	o.cleanups = append(o.cleanups, fn)
}

// Dispose disposes all children in creation order, then runs cleanups.
// The owner is reusable afterwards (watchers re-attach on their next run).
func (o *Owner) Dispose() {
	children := o.children
	o.children = nil
	for _, child := range children {
		child.Dispose()
	}

	cleanups := o.cleanups
	o.cleanups = nil
	for _, fn := range cleanups {
		fn()
	}
}

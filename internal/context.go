package internal

import "slices"

// Context is the reactive execution state of a single goroutine.
// The cell library is single-writer by design, so there is no locking here;
// each goroutine gets its own context (see runtime_default.go).
type Context struct {
	tracking bool

	// activeObserver holds the currently executing observer.
	// It is used to collect dependencies during observer execution.
	activeObserver Observer

	// currentOwner is the owner new watchers and cleanups attach to.
	currentOwner *Owner

	// batchDepth indicates the current depth of nested Batch calls.
	// While > 0, invalidations are queued instead of executed.
	batchDepth int

	// pending holds observers queued for execution during a batch.
	pending []Observer
}

func NewContext() *Context {
	return &Context{
		tracking:     true,
		currentOwner: &Owner{},
	}
}

func (c *Context) ShouldTrack() bool {
	return c.activeObserver != nil && c.tracking
}

func (c *Context) CurrentOwner() *Owner {
	return c.currentOwner
}

// RunWithObserver executes fn with the given observer active, restoring the
// previous observer and owner afterwards.
func (c *Context) RunWithObserver(obs Observer, owner *Owner, fn func()) {
	prevObs := c.activeObserver
	prevOwner := c.currentOwner

	c.activeObserver = obs
	c.currentOwner = owner

	defer func() {
		c.activeObserver = prevObs
		c.currentOwner = prevOwner
	}()

	fn()
}

// RunWithOwner executes fn with the given owner current, without an active
// observer (reads inside fn are not tracked unless a watcher is created).
func (c *Context) RunWithOwner(owner *Owner, fn func()) {
	prev := c.currentOwner
	c.currentOwner = owner
	defer func() { c.currentOwner = prev }()

	fn()
}

// RunUntracked executes fn with dependency tracking disabled.
func (c *Context) RunUntracked(fn func()) {
	prev := c.tracking
	c.tracking = false
	defer func() { c.tracking = prev }()

	fn()
}

// Batch executes fn, deferring observer re-runs until the outermost
// batch completes.
func (c *Context) Batch(fn func()) {
	c.batchDepth++
	defer func() {
		c.batchDepth--
		if c.batchDepth == 0 {
			c.flush()
		}
	}()

	fn()
}

func (c *Context) flush() {
	pending := c.pending
	c.pending = nil

	for _, obs := range pending {
		obs.Execute()
	}
}

func (c *Context) queue(obs Observer) {
	// if not batching, execute immediately
	if c.batchDepth == 0 {
		obs.Execute()
		return
	}

	// else, queue for later execution
	if !slices.Contains(c.pending, obs) {
		c.pending = append(c.pending, obs)
	}
}

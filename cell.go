package validated

import "github.com/tuan188/validated/internal"

// Cell binds a mutable value to a validation rule. Validity is recomputed on
// every write and on rule replacement, never lazily, so watchers always see
// value and validity in agreement.
type Cell[T any] struct {
	source *internal.Source

	value        T
	rule         Rule[T]
	valid        bool
	changed      bool
	errorMessage string
}

// Snapshot is the full observable state of a cell at one point in time.
type Snapshot[T any] struct {
	Value        T
	IsValid      bool
	HasChanges   bool
	ErrorMessage string
}

type cellOptions struct {
	errorMessage string
	nilValid     bool
}

type CellOption func(*cellOptions)

// WithErrorMessage attaches a fixed, human-readable failure message to the
// cell. The message is descriptive metadata only; it is not derived from the
// validation outcome.
func WithErrorMessage(msg string) CellOption {
	return func(o *cellOptions) { o.errorMessage = msg }
}

// WithNilValid sets whether an absent value passes validation.
// Only meaningful with NewOptionalCell; the default is invalid.
func WithNilValid(valid bool) CellOption {
	return func(o *cellOptions) { o.nilValid = valid }
}

// NewCell creates a cell holding initial, validated once against rule.
// A fresh cell reports HasChanges false even when the initial value is
// invalid.
func NewCell[T any](initial T, rule Rule[T], opts ...CellOption) *Cell[T] {
	var o cellOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Cell[T]{
		source:       internal.NewSource(),
		value:        initial,
		rule:         rule,
		valid:        rule.Validate(initial),
		errorMessage: o.errorMessage,
	}
}

// NewOptionalCell creates a cell over an optional value, lifting rule with
// Optional: an absent value is valid only with WithNilValid(true), a present
// value is checked against rule.
func NewOptionalCell[U any](initial Option[U], rule Rule[U], opts ...CellOption) *Cell[Option[U]] {
	var o cellOptions
	for _, opt := range opts {
		opt(&o)
	}

	return NewCell(initial, Optional(rule, o.nilValid), WithErrorMessage(o.errorMessage))
}

// Get returns the current value, subscribing the enclosing watcher.
func (c *Cell[T]) Get() T {
	c.source.Track(internal.Current())
	return c.value
}

// Set stores the new value, flips HasChanges to true permanently and
// recomputes validity with the current rule. Watchers are notified once,
// after both fields are committed. Invalid values are stored all the same;
// validity is advisory.
func (c *Cell[T]) Set(value T) {
	// a panicking rule propagates and leaves the cell untouched
	valid := c.rule.Validate(value)

	c.value = value
	c.valid = valid
	c.changed = true

	c.source.Invalidate(internal.Current())
}

// SetRule replaces the rule and revalidates the current value.
// Rule changes are not user edits: HasChanges is left as is.
func (c *Cell[T]) SetRule(rule Rule[T]) {
	valid := rule.Validate(c.value)

	c.rule = rule
	c.valid = valid

	c.source.Invalidate(internal.Current())
}

// IsValid reports whether the current value passes the current rule.
func (c *Cell[T]) IsValid() bool {
	c.source.Track(internal.Current())
	return c.valid
}

// HasChanges reports whether Set has ever been called on this cell.
func (c *Cell[T]) HasChanges() bool {
	c.source.Track(internal.Current())
	return c.changed
}

func (c *Cell[T]) IsInvalid() bool {
	return !c.IsValid()
}

// IsInvalidAfterChanges reports whether the value is invalid and the user
// has already edited it. Typically drives error display: a field the user
// never touched should not show an error yet.
func (c *Cell[T]) IsInvalidAfterChanges() bool {
	c.source.Track(internal.Current())
	return c.changed && !c.valid
}

// ValidatedValue returns the current value if it is valid.
func (c *Cell[T]) ValidatedValue() (T, bool) {
	c.source.Track(internal.Current())

	if !c.valid {
		var zero T
		return zero, false
	}

	return c.value, true
}

// ErrorMessage returns the message given at construction, or "" if none.
// It does not depend on current validity.
func (c *Cell[T]) ErrorMessage() string {
	return c.errorMessage
}

// Snapshot returns the full observable state in one consistent read.
func (c *Cell[T]) Snapshot() Snapshot[T] {
	c.source.Track(internal.Current())

	return Snapshot[T]{
		Value:        c.value,
		IsValid:      c.valid,
		HasChanges:   c.changed,
		ErrorMessage: c.errorMessage,
	}
}

package validated

// Rule decides whether a value is acceptable. Rules are expected to be pure
// and total; a rule that panics is a defect in the caller's code and the
// panic propagates.
type Rule[T any] interface {
	Validate(T) bool
}

// RuleFunc adapts a plain predicate into a Rule.
type RuleFunc[T any] func(T) bool

func (f RuleFunc[T]) Validate(v T) bool { return f(v) }

// And passes when every rule passes.
func And[T any](rules ...Rule[T]) Rule[T] {
	return RuleFunc[T](func(v T) bool {
		for _, r := range rules {
			if !r.Validate(v) {
				return false
			}
		}
		return true
	})
}

// Or passes when at least one rule passes.
func Or[T any](rules ...Rule[T]) Rule[T] {
	return RuleFunc[T](func(v T) bool {
		for _, r := range rules {
			if r.Validate(v) {
				return true
			}
		}
		return false
	})
}

// Not inverts a rule.
func Not[T any](rule Rule[T]) Rule[T] {
	return RuleFunc[T](func(v T) bool {
		return !rule.Validate(v)
	})
}

// Option is a value that may be absent.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

// Optional lifts a rule over T into a rule over Option[T]: an absent value
// validates to nilValid, a present value is checked against rule. This is
// the canonical combinator behind NewOptionalCell.
func Optional[T any](rule Rule[T], nilValid bool) Rule[Option[T]] {
	return RuleFunc[Option[T]](func(o Option[T]) bool {
		v, ok := o.Get()
		if !ok {
			return nilValid
		}
		return rule.Validate(v)
	})
}

package validated

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleCombinators(t *testing.T) {
	t.Run("and", func(t *testing.T) {
		r := And(Min(0), Max(10))

		assert.True(t, r.Validate(5))
		assert.False(t, r.Validate(-1))
		assert.False(t, r.Validate(11))
	})

	t.Run("or", func(t *testing.T) {
		r := Or(Equal(0), Min(10))

		assert.True(t, r.Validate(0))
		assert.True(t, r.Validate(12))
		assert.False(t, r.Validate(5))
	})

	t.Run("not", func(t *testing.T) {
		r := Not(Equal("admin"))

		assert.True(t, r.Validate("guest"))
		assert.False(t, r.Validate("admin"))
	})

	t.Run("empty and passes, empty or fails", func(t *testing.T) {
		assert.True(t, And[int]().Validate(1))
		assert.False(t, Or[int]().Validate(1))
	})
}

func TestOptional(t *testing.T) {
	t.Run("absent follows nilValid", func(t *testing.T) {
		assert.False(t, Optional(positive, false).Validate(None[int]()))
		assert.True(t, Optional(positive, true).Validate(None[int]()))
	})

	t.Run("present follows the inner rule", func(t *testing.T) {
		assert.True(t, Optional(positive, false).Validate(Some(5)))
		assert.False(t, Optional(positive, true).Validate(Some(-1)))
	})

	t.Run("option accessors", func(t *testing.T) {
		v, ok := Some("hi").Get()
		assert.True(t, ok)
		assert.Equal(t, "hi", v)
		assert.True(t, Some("hi").IsPresent())

		v, ok = None[string]().Get()
		assert.False(t, ok)
		assert.Empty(t, v)
		assert.False(t, None[string]().IsPresent())
	})
}

func TestRules(t *testing.T) {
	t.Run("strings", func(t *testing.T) {
		assert.True(t, NonEmpty().Validate("hi"))
		assert.False(t, NonEmpty().Validate("  "))

		assert.True(t, MinLen(3).Validate("abc"))
		assert.False(t, MinLen(3).Validate("ab"))

		assert.True(t, MaxLen(3).Validate("abc"))
		assert.False(t, MaxLen(3).Validate("abcd"))

		assert.True(t, Contains("@").Validate("a@b"))
		assert.True(t, HasPrefix("go").Validate("gopher"))
		assert.True(t, HasSuffix(".go").Validate("cell.go"))
		assert.False(t, HasSuffix(".go").Validate("cell.md"))
	})

	t.Run("match", func(t *testing.T) {
		email := Match(`^\S+@\S+$`)

		assert.True(t, email.Validate("gopher@example.com"))
		assert.False(t, email.Validate("not an email"))

		assert.Panics(t, func() { Match(`(`) })
	})

	t.Run("comparable", func(t *testing.T) {
		assert.True(t, Equal(42).Validate(42))
		assert.False(t, Equal(42).Validate(41))

		assert.True(t, OneOf("red", "green", "blue").Validate("green"))
		assert.False(t, OneOf("red", "green", "blue").Validate("mauve"))
	})

	t.Run("numeric", func(t *testing.T) {
		assert.True(t, Min(18).Validate(18))
		assert.False(t, Min(18).Validate(17))

		assert.True(t, Max(100).Validate(100))
		assert.False(t, Max(100).Validate(101))

		assert.True(t, Between(0.0, 1.0).Validate(0.5))
		assert.False(t, Between(0.0, 1.0).Validate(1.5))
	})
}

package validated

import (
	"regexp"
	"strings"
)

// Predefined rules for common cases. All are stateless and allocation-light;
// anything expensive belongs in a caller-supplied Rule.

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NonEmpty passes when the string is not empty after trimming whitespace.
func NonEmpty() Rule[string] {
	return RuleFunc[string](func(v string) bool {
		return strings.TrimSpace(v) != ""
	})
}

// MinLen passes when the string is at least min bytes long.
func MinLen(min int) Rule[string] {
	return RuleFunc[string](func(v string) bool {
		return len(v) >= min
	})
}

// MaxLen passes when the string is at most max bytes long.
func MaxLen(max int) Rule[string] {
	return RuleFunc[string](func(v string) bool {
		return len(v) <= max
	})
}

func Contains(substr string) Rule[string] {
	return RuleFunc[string](func(v string) bool {
		return strings.Contains(v, substr)
	})
}

func HasPrefix(prefix string) Rule[string] {
	return RuleFunc[string](func(v string) bool {
		return strings.HasPrefix(v, prefix)
	})
}

func HasSuffix(suffix string) Rule[string] {
	return RuleFunc[string](func(v string) bool {
		return strings.HasSuffix(v, suffix)
	})
}

// Match passes when the string matches the pattern. The pattern is compiled
// once; an invalid pattern panics, like regexp.MustCompile.
func Match(pattern string) Rule[string] {
	re := regexp.MustCompile(pattern)
	return RuleFunc[string](func(v string) bool {
		return re.MatchString(v)
	})
}

// Equal passes when the value equals want.
func Equal[T comparable](want T) Rule[T] {
	return RuleFunc[T](func(v T) bool {
		return v == want
	})
}

// OneOf passes when the value equals one of the choices.
func OneOf[T comparable](choices ...T) Rule[T] {
	return RuleFunc[T](func(v T) bool {
		for _, c := range choices {
			if v == c {
				return true
			}
		}
		return false
	})
}

// Min passes when the value is at least min.
func Min[T Numeric](min T) Rule[T] {
	return RuleFunc[T](func(v T) bool {
		return v >= min
	})
}

// Max passes when the value is at most max.
func Max[T Numeric](max T) Rule[T] {
	return RuleFunc[T](func(v T) bool {
		return v <= max
	})
}

// Between passes when min <= value <= max.
func Between[T Numeric](min, max T) Rule[T] {
	return RuleFunc[T](func(v T) bool {
		return v >= min && v <= max
	})
}

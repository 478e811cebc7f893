package finder

import (
	"fmt"
	"reflect"
	"regexp"
)

// MatchContext carries the read-only state a Predicate may consult beyond
// the value itself: the flattened run of values matched so far, the full
// input sequence, and the value's position within it.
type MatchContext struct {
	// Matched is the flattened list of values matched by the pattern so
	// far, in input order. Callers must not mutate it.
	Matched []interface{}

	// Values is the full input sequence being matched against.
	Values []interface{}

	// Position is the index of the current value within Values.
	Position int
}

// Predicate is the canonical evaluator signature every SubPattern reduces
// to. Factory helpers and PredicateOf exist so callers rarely need to write
// one of these by hand.
type Predicate func(value interface{}, ctx *MatchContext) bool

// PredicateOf adapts a function of one of the following shapes into a
// Predicate, so callers that only care about the value (or the value plus
// part of the context) can write the shorter signature:
//
//	func(value interface{}) bool
//	func(value interface{}, matched []interface{}) bool
//	func(value interface{}, matched, values []interface{}) bool
//	func(value interface{}, matched, values []interface{}, position int) bool
//	func(value interface{}, ctx *MatchContext) bool  (already a Predicate)
//
// Anything else, including a nil fn or a non-func value, yields an
// *ArityError.
func PredicateOf(fn interface{}) (Predicate, error) {
	switch f := fn.(type) {
	case Predicate:
		return f, nil
	case func(interface{}, *MatchContext) bool:
		return Predicate(f), nil
	case func(interface{}) bool:
		return func(v interface{}, _ *MatchContext) bool { return f(v) }, nil
	case func(interface{}, []interface{}) bool:
		return func(v interface{}, ctx *MatchContext) bool { return f(v, ctx.Matched) }, nil
	case func(interface{}, []interface{}, []interface{}) bool:
		return func(v interface{}, ctx *MatchContext) bool { return f(v, ctx.Matched, ctx.Values) }, nil
	case func(interface{}, []interface{}, []interface{}, int) bool:
		return func(v interface{}, ctx *MatchContext) bool { return f(v, ctx.Matched, ctx.Values, ctx.Position) }, nil
	default:
		return nil, &ArityError{Got: fn}
	}
}

// Any matches every value, including nil.
func Any() Predicate {
	return func(interface{}, *MatchContext) bool { return true }
}

// ValueEq matches values equal to v under reflect.DeepEqual, after a
// numeric fudge that treats the common integer/float kinds as equal when
// their float64 representations match (so ValueEq(3) matches both the int
// 3 and the float64 3.0 coming out of, say, a decoded JSON document).
func ValueEq(v interface{}) Predicate {
	target := fudge(v)
	return func(value interface{}, _ *MatchContext) bool {
		return reflect.DeepEqual(fudge(value), target)
	}
}

// ValueNeq is the negation of ValueEq.
func ValueNeq(v interface{}) Predicate {
	eq := ValueEq(v)
	return func(value interface{}, ctx *MatchContext) bool { return !eq(value, ctx) }
}

// ValueIn matches values equal (per ValueEq's semantics) to any of
// candidates. An empty candidate list never matches.
func ValueIn(candidates ...interface{}) Predicate {
	fudged := make([]interface{}, len(candidates))
	for i, c := range candidates {
		fudged[i] = fudge(c)
	}
	return func(value interface{}, _ *MatchContext) bool {
		fv := fudge(value)
		for _, c := range fudged {
			if reflect.DeepEqual(fv, c) {
				return true
			}
		}
		return false
	}
}

// ValueInRange matches orderable values v such that lo <= v <= hi. lo and hi
// must be one of the builtin numeric kinds, or strings (compared
// lexically); a value of a different kind never matches.
func ValueInRange(lo, hi interface{}) Predicate {
	loF, loIsNum := toFloat(lo)
	hiF, hiIsNum := toFloat(hi)
	loS, loIsStr := lo.(string)
	hiS, hiIsStr := hi.(string)

	return func(value interface{}, _ *MatchContext) bool {
		if loIsNum && hiIsNum {
			vf, ok := toFloat(value)
			return ok && vf >= loF && vf <= hiF
		}
		if loIsStr && hiIsStr {
			vs, ok := value.(string)
			return ok && vs >= loS && vs <= hiS
		}
		return false
	}
}

// ValueOf matches values whose dynamic type equals sample's dynamic type.
func ValueOf(sample interface{}) Predicate {
	want := reflect.TypeOf(sample)
	return func(value interface{}, _ *MatchContext) bool {
		return value != nil && reflect.TypeOf(value) == want
	}
}

// Present matches values that are neither nil nor the empty string. Other
// "empty" values (empty slices, empty maps, zero numbers) count as
// present.
func Present() Predicate {
	return func(value interface{}, _ *MatchContext) bool {
		if value == nil {
			return false
		}
		if s, ok := value.(string); ok && s == "" {
			return false
		}
		return true
	}
}

// Absent is the negation of Present.
func Absent() Predicate {
	present := Present()
	return func(value interface{}, ctx *MatchContext) bool { return !present(value, ctx) }
}

// MatchRegexp matches string values (or fmt.Stringer values) against rx.
func MatchRegexp(rx *regexp.Regexp) Predicate {
	return func(value interface{}, _ *MatchContext) bool {
		s, ok := asString(value)
		return ok && rx.MatchString(s)
	}
}

func asString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// fudge normalizes the common numeric kinds to float64 so that ValueEq/
// ValueIn compare 3, int32(3), and 3.0 as equal, which keeps comparisons
// stable across values decoded from JSON.
func fudge(x interface{}) interface{} {
	switch v := x.(type) {
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return x
	}
}

func toFloat(x interface{}) (float64, bool) {
	f := fudge(x)
	v, ok := f.(float64)
	return v, ok
}

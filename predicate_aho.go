package finder

import "github.com/coregx/ahocorasick"

// ContainsAnyOf builds a Predicate over string-valued elements (or
// fmt.Stringer values) backed by a compiled Aho-Corasick automaton, true
// when the value contains at least one of substrs as a substring. The
// automaton is built once and shared by every invocation, so testing each
// element against a large literal set stays cheap.
//
// ContainsAnyOf panics if the automaton fails to build (only possible with
// inputs ahocorasick itself rejects, e.g. none supplied) — a construction
// time error, not a match-time one.
func ContainsAnyOf(substrs ...string) Predicate {
	builder := ahocorasick.NewBuilder()
	for _, s := range substrs {
		builder.AddPattern([]byte(s))
	}
	automaton, err := builder.Build()
	if err != nil {
		panic("finder: ContainsAnyOf: " + err.Error())
	}

	return func(value interface{}, _ *MatchContext) bool {
		s, ok := asString(value)
		if !ok {
			return false
		}
		return automaton.IsMatch([]byte(s))
	}
}

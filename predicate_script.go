package finder

import (
	"fmt"

	"github.com/dop251/goja"
)

// Script builds a Predicate that evaluates src, a JavaScript boolean
// expression, against every candidate value via a goja runtime.
//
// Inside src, three bindings are available:
//
//	value    the candidate value being tested
//	matched  the flattened list of values matched so far
//	position the candidate's index in the input sequence
//
// A fresh *goja.Runtime is created per invocation, which keeps the
// predicate safe for concurrent Match calls on the same Pattern. If src
// fails to compile, Script panics immediately — a malformed script is a
// programmer error discovered at Pattern-construction time, not a
// match-time condition.
func Script(src string) Predicate {
	prog, err := goja.Compile("", fmt.Sprintf("(function(value, matched, position) { return (%s); })", src), true)
	if err != nil {
		panic(fmt.Sprintf("finder: Script(%q): %v", src, err))
	}

	return func(value interface{}, ctx *MatchContext) bool {
		vm := goja.New()
		fnVal, err := vm.RunProgram(prog)
		if err != nil {
			return false
		}
		fn, ok := goja.AssertFunction(fnVal)
		if !ok {
			return false
		}
		matched := make([]interface{}, len(ctx.Matched))
		copy(matched, ctx.Matched)
		result, err := fn(goja.Undefined(), vm.ToValue(value), vm.ToValue(matched), vm.ToValue(ctx.Position))
		if err != nil {
			return false
		}
		return result.ToBoolean()
	}
}

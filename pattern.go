package finder

import "regexp"

// IndexRange addresses a contiguous run of sub-patterns by position, for
// use with SetOptionsFor. Both ends are inclusive.
type IndexRange struct {
	From, To int
}

// Pattern is an ordered list of SubPatterns plus the pattern-level default
// options applied to each SubPattern at the time it is added. Pattern is
// immutable once matching begins: every method that changes its shape is a
// builder method, meant to be called before Match/Scan.
type Pattern struct {
	subpatterns []*SubPattern
	nameIndex   map[string]int

	// lastMandatoryIndex is the maximum i such that subpatterns[i] is not
	// optional, or -1 if every sub-pattern is optional.
	lastMandatoryIndex int

	// gapsStack is the stack of allow_gaps defaults pushed by WithOptions;
	// the bottom entry (false) is the Pattern-wide default.
	gapsStack []bool

	// optsStack is the stack of base Options pushed by WithOptions; every
	// add() call applies the concatenation of this stack before its own
	// call-specific options, so inner options can override outer ones.
	optsStack [][]Option
}

// New builds a Pattern. If build is non-nil it is invoked with the new,
// empty Pattern so the caller can populate it with the fluent API in one
// expression.
func New(build func(p *Pattern)) *Pattern {
	p := &Pattern{lastMandatoryIndex: -1, gapsStack: []bool{false}}
	if build != nil {
		build(p)
	}
	return p
}

func (p *Pattern) currentGapsDefault() bool {
	return p.gapsStack[len(p.gapsStack)-1]
}

func (p *Pattern) scopedOptions() []Option {
	var out []Option
	for _, scope := range p.optsStack {
		out = append(out, scope...)
	}
	return out
}

// WithOptions pushes opts as the default for every sub-pattern added inside
// build, then pops the scope back off. Scopes nest; inner options override
// outer ones.
func (p *Pattern) WithOptions(opts []Option, build func(p *Pattern)) *Pattern {
	probe := newSubPattern(Any(), p.currentGapsDefault(), opts)
	p.gapsStack = append(p.gapsStack, probe.resolvedGaps)
	p.optsStack = append(p.optsStack, opts)
	if build != nil {
		build(p)
	}
	p.optsStack = p.optsStack[:len(p.optsStack)-1]
	p.gapsStack = p.gapsStack[:len(p.gapsStack)-1]
	return p
}

// add appends a new SubPattern wrapping pred, combining the current
// WithOptions scope with callOpts (call-specific options take precedence).
// A nil predicate or duplicate sub-pattern name aborts construction
// immediately via panic; a chainable builder has no error return to
// thread one through.
func (p *Pattern) add(pred Predicate, callOpts []Option) *Pattern {
	if pred == nil {
		panic(ErrNilPredicate)
	}
	combined := make([]Option, 0, len(callOpts)+4)
	combined = append(combined, p.scopedOptions()...)
	combined = append(combined, callOpts...)

	sp := newSubPattern(pred, p.currentGapsDefault(), combined)

	idx := len(p.subpatterns)
	if sp.name != "" {
		if p.nameIndex == nil {
			p.nameIndex = make(map[string]int)
		}
		if _, exists := p.nameIndex[sp.name]; exists {
			panic(&DuplicateNameError{Name: sp.name})
		}
		p.nameIndex[sp.name] = idx
	}

	p.subpatterns = append(p.subpatterns, sp)
	if !sp.optional {
		p.lastMandatoryIndex = idx
	}
	return p
}

func (p *Pattern) addVariant(pred Predicate, extra []Option, opts []Option) *Pattern {
	combined := make([]Option, 0, len(opts)+len(extra))
	combined = append(combined, opts...)
	combined = append(combined, extra...)
	return p.add(pred, combined)
}

// Len returns the number of sub-patterns in the Pattern.
func (p *Pattern) Len() int { return len(p.subpatterns) }

// At returns the sub-pattern addressed by id, an int index or a string
// name. It returns (nil, false) when id addresses nothing, the same missing
// signal as MatchResult.At.
func (p *Pattern) At(id interface{}) (*SubPattern, bool) {
	switch v := id.(type) {
	case int:
		if v < 0 || v >= len(p.subpatterns) {
			return nil, false
		}
		return p.subpatterns[v], true
	case string:
		idx, ok := p.nameIndex[v]
		if !ok {
			return nil, false
		}
		return p.subpatterns[idx], true
	default:
		return nil, false
	}
}

// --- factories: any -------------------------------------------------------

func (p *Pattern) Any(opts ...Option) *Pattern { return p.addVariant(Any(), nil, opts) }
func (p *Pattern) AnyOpt(opts ...Option) *Pattern {
	return p.addVariant(Any(), []Option{Optional()}, opts)
}
func (p *Pattern) LeastOneAny(opts ...Option) *Pattern {
	return p.addVariant(Any(), []Option{Repeat()}, opts)
}
func (p *Pattern) ZeroOrMoreAny(opts ...Option) *Pattern {
	return p.addVariant(Any(), []Option{Repeat(), Optional()}, opts)
}

// --- factories: value_eq ---------------------------------------------------

func (p *Pattern) ValueEq(v interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueEq(v), nil, opts)
}
func (p *Pattern) ValueEqOpt(v interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueEq(v), []Option{Optional()}, opts)
}
func (p *Pattern) LeastOneValueEq(v interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueEq(v), []Option{Repeat()}, opts)
}
func (p *Pattern) ZeroOrMoreValueEq(v interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueEq(v), []Option{Repeat(), Optional()}, opts)
}

// --- factories: value_neq ---------------------------------------------------

func (p *Pattern) ValueNeq(v interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueNeq(v), nil, opts)
}
func (p *Pattern) ValueNeqOpt(v interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueNeq(v), []Option{Optional()}, opts)
}
func (p *Pattern) LeastOneValueNeq(v interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueNeq(v), []Option{Repeat()}, opts)
}
func (p *Pattern) ZeroOrMoreValueNeq(v interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueNeq(v), []Option{Repeat(), Optional()}, opts)
}

// --- factories: value_in (membership) ---------------------------------------

func (p *Pattern) ValueIn(candidates []interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueIn(candidates...), nil, opts)
}
func (p *Pattern) ValueInOpt(candidates []interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueIn(candidates...), []Option{Optional()}, opts)
}
func (p *Pattern) LeastOneValueIn(candidates []interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueIn(candidates...), []Option{Repeat()}, opts)
}
func (p *Pattern) ZeroOrMoreValueIn(candidates []interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueIn(candidates...), []Option{Repeat(), Optional()}, opts)
}

// --- factories: value_in (numeric/lexical range) ----------------------------

func (p *Pattern) ValueInRange(lo, hi interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueInRange(lo, hi), nil, opts)
}
func (p *Pattern) ValueInRangeOpt(lo, hi interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueInRange(lo, hi), []Option{Optional()}, opts)
}
func (p *Pattern) LeastOneValueInRange(lo, hi interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueInRange(lo, hi), []Option{Repeat()}, opts)
}
func (p *Pattern) ZeroOrMoreValueInRange(lo, hi interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueInRange(lo, hi), []Option{Repeat(), Optional()}, opts)
}

// --- factories: value_of (type check) ---------------------------------------

func (p *Pattern) ValueOf(sample interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueOf(sample), nil, opts)
}
func (p *Pattern) ValueOfOpt(sample interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueOf(sample), []Option{Optional()}, opts)
}
func (p *Pattern) LeastOneValueOf(sample interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueOf(sample), []Option{Repeat()}, opts)
}
func (p *Pattern) ZeroOrMoreValueOf(sample interface{}, opts ...Option) *Pattern {
	return p.addVariant(ValueOf(sample), []Option{Repeat(), Optional()}, opts)
}

// --- factories: present ------------------------------------------------------

func (p *Pattern) Present(opts ...Option) *Pattern { return p.addVariant(Present(), nil, opts) }
func (p *Pattern) PresentOpt(opts ...Option) *Pattern {
	return p.addVariant(Present(), []Option{Optional()}, opts)
}
func (p *Pattern) LeastOnePresent(opts ...Option) *Pattern {
	return p.addVariant(Present(), []Option{Repeat()}, opts)
}
func (p *Pattern) ZeroOrMorePresent(opts ...Option) *Pattern {
	return p.addVariant(Present(), []Option{Repeat(), Optional()}, opts)
}

// --- factories: absent --------------------------------------------------------

func (p *Pattern) Absent(opts ...Option) *Pattern { return p.addVariant(Absent(), nil, opts) }
func (p *Pattern) AbsentOpt(opts ...Option) *Pattern {
	return p.addVariant(Absent(), []Option{Optional()}, opts)
}
func (p *Pattern) LeastOneAbsent(opts ...Option) *Pattern {
	return p.addVariant(Absent(), []Option{Repeat()}, opts)
}
func (p *Pattern) ZeroOrMoreAbsent(opts ...Option) *Pattern {
	return p.addVariant(Absent(), []Option{Repeat(), Optional()}, opts)
}

// --- factories: match_regexp ---------------------------------------------------

func (p *Pattern) MatchRegexp(rx *regexp.Regexp, opts ...Option) *Pattern {
	return p.addVariant(MatchRegexp(rx), nil, opts)
}
func (p *Pattern) MatchRegexpOpt(rx *regexp.Regexp, opts ...Option) *Pattern {
	return p.addVariant(MatchRegexp(rx), []Option{Optional()}, opts)
}
func (p *Pattern) LeastOneMatchRegexp(rx *regexp.Regexp, opts ...Option) *Pattern {
	return p.addVariant(MatchRegexp(rx), []Option{Repeat()}, opts)
}
func (p *Pattern) ZeroOrMoreMatchRegexp(rx *regexp.Regexp, opts ...Option) *Pattern {
	return p.addVariant(MatchRegexp(rx), []Option{Repeat(), Optional()}, opts)
}

// --- retroactive option mutation --------------------------------------------

var knownOptionKeys = map[string]bool{
	"optional":            true,
	"repeat":              true,
	"capture":             true,
	"allow_gaps":          true,
	"gap_break_condition": true,
	"name":                true,
}

// SetOptionsFor retroactively mutates the sub-patterns addressed by ids,
// each of which must be an int index, a string name, or an IndexRange.
// opts is a bag of the same keys Option constructs, kept as a map here
// (rather than Option values) so an unknown key can be reported as
// *UnknownOptionError; a statically typed functional-option list can never
// carry an unknown key to reject.
func (p *Pattern) SetOptionsFor(ids []interface{}, opts map[string]interface{}) error {
	for key := range opts {
		if !knownOptionKeys[key] {
			return &UnknownOptionError{Key: key}
		}
	}

	indices, err := p.resolveRefs(ids)
	if err != nil {
		return err
	}

	for _, idx := range indices {
		sp := p.subpatterns[idx]
		if v, ok := opts["optional"]; ok {
			b, ok := v.(bool)
			if !ok {
				return &UnknownOptionError{Key: "optional"}
			}
			sp.optional = b
		}
		if v, ok := opts["repeat"]; ok {
			b, ok := v.(bool)
			if !ok {
				return &UnknownOptionError{Key: "repeat"}
			}
			sp.repeat = b
		}
		if v, ok := opts["capture"]; ok {
			b, ok := v.(bool)
			if !ok {
				return &UnknownOptionError{Key: "capture"}
			}
			sp.capture = b
		}
		if v, ok := opts["allow_gaps"]; ok {
			b, ok := v.(bool)
			if !ok {
				return &UnknownOptionError{Key: "allow_gaps"}
			}
			if b {
				sp.allowGaps = gapAllow
			} else {
				sp.allowGaps = gapDeny
			}
			sp.resolvedGaps = b
		}
		if v, ok := opts["gap_break_condition"]; ok {
			pred, perr := PredicateOf(v)
			if perr != nil {
				return perr
			}
			sp.breakCond = pred
		}
		if v, ok := opts["name"]; ok {
			name, ok := v.(string)
			if !ok {
				return &UnknownOptionError{Key: "name"}
			}
			if existing, exists := p.nameIndex[name]; exists && existing != idx {
				return &DuplicateNameError{Name: name}
			}
			if sp.name != "" {
				delete(p.nameIndex, sp.name)
			}
			sp.name = name
			if name != "" {
				if p.nameIndex == nil {
					p.nameIndex = make(map[string]int)
				}
				p.nameIndex[name] = idx
			}
		}
	}

	p.recomputeLastMandatory()
	return nil
}

func (p *Pattern) recomputeLastMandatory() {
	p.lastMandatoryIndex = -1
	for i, sp := range p.subpatterns {
		if !sp.optional {
			p.lastMandatoryIndex = i
		}
	}
}

func (p *Pattern) resolveRefs(ids []interface{}) ([]int, error) {
	var out []int
	for _, id := range ids {
		switch v := id.(type) {
		case int:
			if v < 0 || v >= len(p.subpatterns) {
				return nil, &InvalidSubPatternRefError{Ref: v}
			}
			out = append(out, v)
		case string:
			idx, ok := p.nameIndex[v]
			if !ok {
				return nil, &InvalidSubPatternRefError{Ref: v}
			}
			out = append(out, idx)
		case IndexRange:
			if v.From < 0 || v.To >= len(p.subpatterns) || v.From > v.To {
				return nil, &InvalidSubPatternRefError{Ref: v}
			}
			for i := v.From; i <= v.To; i++ {
				out = append(out, i)
			}
		default:
			return nil, &InvalidSubPatternRefError{Ref: id}
		}
	}
	return out, nil
}

// --- matching ---------------------------------------------------------------

// Match attempts to match values against the Pattern from its start,
// returning the captured groups. A nil result with a nil error means no
// match; a miss is never signalled as an error.
func (p *Pattern) Match(values []interface{}) (*MatchResult, error) {
	res, _, err := p.MatchWithPosition(values)
	return res, err
}

// MatchWithPosition is Match plus the next-position index: the index into
// values immediately after the last consumed element (0 only for the empty
// match of an all-optional Pattern that consumed nothing).
func (p *Pattern) MatchWithPosition(values []interface{}) (*MatchResult, int, error) {
	if values == nil {
		return nil, 0, ErrNotSequence
	}

	best, err := p.search(values)
	if err != nil {
		return nil, 0, err
	}
	if !best.found {
		return nil, 0, nil
	}
	return newMatchResult(p, best.groups), best.nextPos, nil
}

// Matches reports whether values matches the Pattern at all.
func (p *Pattern) Matches(values []interface{}) (bool, error) {
	res, _, err := p.MatchWithPosition(values)
	if err != nil {
		return false, err
	}
	return res != nil, nil
}

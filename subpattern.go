package finder

// gapSetting is the tri-state gap flag: a SubPattern either forces
// gap-skipping on or off, or inherits the Pattern-level default that was
// in effect when it was added.
type gapSetting int

const (
	gapInherit gapSetting = iota
	gapAllow
	gapDeny
)

// SubPattern is one atom of a Pattern: a predicate plus match-modifier
// flags. SubPatterns are built through Pattern's fluent API and Options;
// there is no exported constructor. Once matching begins a SubPattern must
// not be mutated.
type SubPattern struct {
	evaluator Predicate
	breakCond Predicate // nil means "no break condition configured"

	optional  bool
	repeat    bool
	capture   bool
	allowGaps gapSetting
	name      string

	// resolvedGaps is allowGaps snapshotted against the Pattern's default
	// at add-time, not at match-time.
	resolvedGaps bool
}

// Option configures a SubPattern at the moment it is appended to a
// Pattern. Options compose: Pattern.ValueEq(v, Optional(), Repeat()) builds
// an optional, repeating sub-pattern in one call.
type Option func(*SubPattern)

// Optional marks the sub-pattern as matchable zero times.
func Optional() Option { return func(sp *SubPattern) { sp.optional = true } }

// Repeat marks the sub-pattern as matchable one or more (or, combined with
// Optional, zero or more) consecutive times.
func Repeat() Option { return func(sp *SubPattern) { sp.repeat = true } }

// NoCapture excludes the sub-pattern's group from a returned MatchResult.
func NoCapture() Option { return func(sp *SubPattern) { sp.capture = false } }

// AllowGaps overrides, for this sub-pattern only, whether non-matching
// elements between it and the previous sub-pattern may be skipped. Omit
// this option to inherit the Pattern's default at add-time.
func AllowGaps(allow bool) Option {
	return func(sp *SubPattern) {
		if allow {
			sp.allowGaps = gapAllow
		} else {
			sp.allowGaps = gapDeny
		}
	}
}

// BreakOn sets the gap_break_condition: once skipping values between this
// sub-pattern and the previous one, a value for which pred reports true
// forbids any further skipping.
func BreakOn(pred Predicate) Option {
	return func(sp *SubPattern) { sp.breakCond = pred }
}

// Name assigns the sub-pattern a name for later retrieval via
// MatchResult.At(name). Names must be unique within a Pattern; a duplicate
// is rejected by Pattern's add path with a *DuplicateNameError.
func Name(name string) Option {
	return func(sp *SubPattern) { sp.name = name }
}

// newSubPattern applies defaultGaps (the Pattern's gap default at the time
// of the call) and then opts, in order, to a fresh SubPattern wrapping
// pred.
func newSubPattern(pred Predicate, defaultGaps bool, opts []Option) *SubPattern {
	sp := &SubPattern{
		evaluator: pred,
		capture:   true,
		allowGaps: gapInherit,
	}
	for _, opt := range opts {
		opt(sp)
	}
	switch sp.allowGaps {
	case gapAllow:
		sp.resolvedGaps = true
	case gapDeny:
		sp.resolvedGaps = false
	default:
		sp.resolvedGaps = defaultGaps
	}
	return sp
}

// Name returns the sub-pattern's name, or "" if it has none.
func (sp *SubPattern) Name() string { return sp.name }

// IsOptional reports whether the sub-pattern may match zero elements.
func (sp *SubPattern) IsOptional() bool { return sp.optional }

// IsRepeat reports whether the sub-pattern may match consecutive elements.
func (sp *SubPattern) IsRepeat() bool { return sp.repeat }

// Captures reports whether the sub-pattern's group appears in MatchResults.
func (sp *SubPattern) Captures() bool { return sp.capture }

// matchEvaluator invokes the sub-pattern's predicate.
func (sp *SubPattern) matchEvaluator(value interface{}, ctx *MatchContext) bool {
	return sp.evaluator(value, ctx)
}

// broke reports whether gap-skipping must stop at value. With no break
// condition configured, skipping is never forced to stop by this
// mechanism; with one configured, its result is the answer (true means
// "stop here").
func (sp *SubPattern) broke(value interface{}, ctx *MatchContext) bool {
	if sp.breakCond == nil {
		return false
	}
	return sp.breakCond(value, ctx)
}

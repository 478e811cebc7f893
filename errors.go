package finder

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the builder and matching operations. A "no
// match" outcome is never one of these: it is signalled through a nil
// *MatchResult (and ok=false from Scanner.Scan/ScanUntil), never an error.
var (
	// ErrNotSequence is returned when Match, MatchWithPosition or Matches is
	// given a nil values slice where a sequence was required. A Scanner over
	// a nil slice reports end-of-values instead.
	ErrNotSequence = errors.New("finder: values is not a sequence")

	// ErrNilPredicate reports a SubPattern constructed with a nil
	// evaluator; the builder panics with it, like DuplicateNameError.
	ErrNilPredicate = errors.New("finder: predicate is nil")
)

// ArityError reports that a predicate passed to PredicateOf did not match
// one of the supported call shapes (arity 1..4).
type ArityError struct {
	// Got is the value that was rejected.
	Got interface{}
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("finder: invalid predicate arity: %T is not a func of arity 1..4", e.Got)
}

// UnknownOptionError reports that SetOptionsFor (or a raw option map) was
// given a key outside the recognized option set.
type UnknownOptionError struct {
	Key string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("finder: unknown option %q", e.Key)
}

// DuplicateNameError reports that a SubPattern was added under a name
// already used by an earlier SubPattern in the same Pattern.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("finder: duplicate sub-pattern name %q", e.Name)
}

// InvalidSubPatternRefError reports that SetOptionsFor was given an id that
// does not address any sub-pattern of the Pattern (out-of-range index, or
// unknown name).
type InvalidSubPatternRefError struct {
	Ref interface{}
}

func (e *InvalidSubPatternRefError) Error() string {
	return fmt.Sprintf("finder: no such sub-pattern %v", e.Ref)
}

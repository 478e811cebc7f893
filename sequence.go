package finder

// Sequence abstracts the source of values a Scanner walks: opaque values
// in a heterogeneous sequence, addressed by position.
//
// Most callers never implement Sequence directly: NewSequence wraps a
// plain []interface{}, which is enough for anything already materialized
// in memory. FuncSequence covers lazy, restartable sources whose length
// isn't known ahead of matching.
type Sequence interface {
	// At returns the value at position i and true, or (nil, false) once i
	// is at or past the end of the sequence.
	At(i int) (interface{}, bool)
}

// SliceSequence adapts a []interface{} to Sequence.
type SliceSequence struct {
	values []interface{}
}

// NewSequence wraps values as a Sequence.
func NewSequence(values []interface{}) *SliceSequence {
	return &SliceSequence{values: values}
}

func (s *SliceSequence) At(i int) (interface{}, bool) {
	if i < 0 || i >= len(s.values) {
		return nil, false
	}
	return s.values[i], true
}

// Len returns the number of values in the sequence.
func (s *SliceSequence) Len() int { return len(s.values) }

// Values returns the underlying slice. Callers must not mutate it.
func (s *SliceSequence) Values() []interface{} { return s.values }

// FuncSequence adapts a generator function to Sequence, memoizing what it
// has produced so far so that re-reading an earlier index (as the Matcher's
// backtracking does) never calls gen twice for the same position. gen
// should return (value, true) for a defined position and (nil, false) once
// exhausted; once gen reports exhaustion at i, FuncSequence never calls it
// again for any index >= i.
type FuncSequence struct {
	gen      func(i int) (interface{}, bool)
	cache    []interface{}
	exhausted bool
	length    int // valid once exhausted is true
}

// NewFuncSequence builds a lazy Sequence backed by gen.
func NewFuncSequence(gen func(i int) (interface{}, bool)) *FuncSequence {
	return &FuncSequence{gen: gen}
}

func (s *FuncSequence) At(i int) (interface{}, bool) {
	if i < 0 {
		return nil, false
	}
	if s.exhausted && i >= s.length {
		return nil, false
	}
	for len(s.cache) <= i {
		v, ok := s.gen(len(s.cache))
		if !ok {
			s.exhausted = true
			s.length = len(s.cache)
			return nil, false
		}
		s.cache = append(s.cache, v)
	}
	return s.cache[i], true
}

// Eov peeks the position from to detect exhaustion without consuming
// anything past it.
func (s *FuncSequence) Eov(from int) bool {
	_, ok := s.At(from)
	return !ok
}

// Materialize drains the sequence into a plain slice, forcing gen to run to
// completion. Useful for handing a FuncSequence's contents to Pattern.Match,
// which operates on []interface{} directly.
func (s *FuncSequence) Materialize() []interface{} {
	for !s.exhausted {
		if _, ok := s.At(len(s.cache)); !ok {
			break
		}
	}
	out := make([]interface{}, len(s.cache))
	copy(out, s.cache)
	return out
}

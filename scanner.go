package finder

// Scanner walks a Sequence, repeatedly trying a Pattern at successive
// positions. It owns a mutable cursor and is not safe for concurrent use;
// construct one Scanner per goroutine.
type Scanner struct {
	pattern *Pattern
	seq     Sequence
	length  int // -1 when seq's length isn't known up front (a FuncSequence)
	pos     int
}

// NewScanner builds a Scanner over values for pattern.
func NewScanner(pattern *Pattern, values []interface{}) *Scanner {
	return &Scanner{pattern: pattern, seq: NewSequence(values), length: len(values)}
}

// NewSequenceScanner builds a Scanner over an arbitrary Sequence. length is
// the known length of seq, or -1 if seq is unbounded/lazy (e.g. a
// FuncSequence), in which case the Scanner relies on Sequence.At reporting
// (nil, false) to detect exhaustion.
func NewSequenceScanner(pattern *Pattern, seq Sequence, length int) *Scanner {
	return &Scanner{pattern: pattern, seq: seq, length: length}
}

// Pos returns the Scanner's current cursor position.
func (sc *Scanner) Pos() int { return sc.pos }

// Eov ("end of values") reports whether the cursor is at or past the end of
// the underlying sequence.
func (sc *Scanner) Eov() bool {
	if sc.length >= 0 {
		return sc.pos >= sc.length
	}
	_, ok := sc.seq.At(sc.pos)
	return !ok
}

// Reset rewinds the cursor to the start of the sequence.
func (sc *Scanner) Reset() { sc.pos = 0 }

// Scan attempts to match the Pattern starting exactly at the current
// position. On success it advances the cursor past the match and returns
// the captured groups; on failure the cursor is left unmoved and the
// result is (nil, false, nil).
func (sc *Scanner) Scan() (*MatchResult, bool, error) {
	if sc.Eov() {
		return nil, false, nil
	}
	window := sc.window()
	res, next, err := sc.pattern.MatchWithPosition(window)
	if err != nil {
		return nil, false, err
	}
	if res == nil {
		return nil, false, nil
	}
	sc.pos += next
	return res, true, nil
}

// ScanUntil searches forward from the current position for the next place
// the Pattern matches. On success the cursor lands just past the match and
// ScanUntil reports the match's start position; if no trial start through
// the end of the sequence yields a match it returns (nil, -1, false, nil)
// and the cursor stays where it was.
func (sc *Scanner) ScanUntil() (*MatchResult, int, bool, error) {
	saved := sc.pos
	for !sc.Eov() {
		start := sc.pos
		window := sc.window()
		res, next, err := sc.pattern.MatchWithPosition(window)
		if err != nil {
			sc.pos = saved
			return nil, -1, false, err
		}
		if res != nil {
			sc.pos = start + next
			if next == 0 {
				sc.pos = start + 1 // force progress on a zero-width match
			}
			return res, start, true, nil
		}
		sc.pos++
	}
	sc.pos = saved
	return nil, -1, false, nil
}

// ScanAll drains the Scanner from its current position to the end,
// collecting every non-overlapping match ScanUntil finds.
func (sc *Scanner) ScanAll() ([]*MatchResult, error) {
	var out []*MatchResult
	for {
		res, _, ok, err := sc.ScanUntil()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, res)
	}
}

// window materializes the values from the current position to the end of
// the sequence, the slice Pattern.Match operates on.
func (sc *Scanner) window() []interface{} {
	if sc.length >= 0 {
		out := make([]interface{}, 0, sc.length-sc.pos)
		for i := sc.pos; i < sc.length; i++ {
			v, _ := sc.seq.At(i)
			out = append(out, v)
		}
		return out
	}
	var out []interface{}
	for i := sc.pos; ; i++ {
		v, ok := sc.seq.At(i)
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

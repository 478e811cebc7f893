package finder

// bestMatch is the winning candidate tracked while searching. Scoring is
// greedy longest-match: prefer the largest nextPos, then the largest total
// matched element count.
type bestMatch struct {
	found   bool
	groups  [][]interface{}
	nextPos int
	total   int
}

// searchState is one node of the search space: a (sub-pattern index, value
// index, accumulated groups) tuple plus the bookkeeping needed to tell
// whether the next value continues the same sub-pattern's run.
type searchState struct {
	sp   int
	vp   int
	prevSP      int // -1 stands for "no sub-pattern advanced yet"
	prevMatched bool

	groups [][]interface{}
	flat   []interface{}
}

// visitKey identifies a position in the search that memoization collapses
// duplicate states onto; a state is expanded only if no earlier state with
// the same key had at least as many matched values.
type visitKey struct {
	sp, vp      int
	prevSP      int
	prevMatched bool
}

// maxSearchSteps bounds the search alongside memoization so pathological
// patterns terminate.
const maxSearchSteps = 2_000_000

// search explores every assignment of values to sub-patterns breadth-first
// and returns the winning candidate, if any.
func (p *Pattern) search(values []interface{}) (bestMatch, error) {
	if len(p.subpatterns) == 0 {
		return bestMatch{found: true, groups: nil, nextPos: 0, total: 0}, nil
	}

	queue := []searchState{{
		sp: 0, vp: 0,
		prevSP:      -1,
		prevMatched: false,
		groups:      make([][]interface{}, len(p.subpatterns)),
	}}

	visited := make(map[visitKey]int)
	var best bestMatch
	steps := 0
	last := p.lastMandatoryIndex
	isLastIdx := len(p.subpatterns) - 1

	for len(queue) > 0 {
		steps++
		if steps > maxSearchSteps {
			break
		}

		s := queue[0]
		queue = queue[1:]

		if s.vp >= len(values) {
			continue
		}

		key := visitKey{sp: s.sp, vp: s.vp, prevSP: s.prevSP, prevMatched: s.prevMatched}
		if seen, ok := visited[key]; ok && seen >= len(s.flat) {
			continue
		}
		visited[key] = len(s.flat)

		sub := p.subpatterns[s.sp]
		value := values[s.vp]
		ctx := &MatchContext{Matched: s.flat, Values: values, Position: s.vp}

		matched := sub.matchEvaluator(value, ctx)
		broke := sub.broke(value, ctx)
		gaps := sub.resolvedGaps && !broke
		prevSelf := s.prevSP == s.sp || s.prevSP == -1

		extGroups, extFlat := s.groups, s.flat
		if matched {
			extGroups = cloneGroups(s.groups)
			if prevSelf {
				extGroups[s.sp] = appendValue(extGroups[s.sp], value)
			} else {
				extGroups[s.sp] = []interface{}{value}
			}
			extFlat = appendValue(s.flat, value)
		}

		if matched && s.sp >= last {
			nextPos := s.vp + 1
			total := len(extFlat)
			if !best.found || nextPos > best.nextPos || (nextPos == best.nextPos && total > best.total) {
				best = bestMatch{found: true, groups: padGroups(extGroups, s.sp, len(p.subpatterns)), nextPos: nextPos, total: total}
			}
		}

		isLast := s.sp == isLastIdx

		// Rule 1: stay, advance value (repeat).
		if matched && sub.repeat {
			queue = append(queue, searchState{
				sp: s.sp, vp: s.vp + 1,
				prevSP: s.sp, prevMatched: true,
				groups: extGroups, flat: extFlat,
			})
		}

		// Rule 2: stay, skip value (gap). Gap-skipping is governed by the
		// current sub-pattern's own resolved setting; the default it
		// inherited was snapshotted at add-time.
		if !matched && gaps {
			queue = append(queue, searchState{
				sp: s.sp, vp: s.vp + 1,
				prevSP: s.prevSP, prevMatched: true,
				groups: s.groups, flat: s.flat,
			})
		}

		// Rule 3: advance both sub-pattern and value.
		if (matched || gaps) && !isLast && !(sub.optional && !matched) {
			queue = append(queue, searchState{
				sp: s.sp + 1, vp: s.vp + 1,
				prevSP: s.sp, prevMatched: true,
				groups: extGroups, flat: extFlat,
			})
		}

		// Rule 4: skip this optional sub-pattern, keep the value.
		if sub.optional && !isLast && !(prevSelf && s.prevMatched) {
			g := s.groups
			if !prevSelf {
				g = cloneGroups(s.groups)
				if g[s.sp] == nil {
					g[s.sp] = []interface{}{}
				}
			}
			queue = append(queue, searchState{
				sp: s.sp + 1, vp: s.vp,
				prevSP: s.sp, prevMatched: false,
				groups: g, flat: s.flat,
			})
		}
	}

	if best.found {
		return best, nil
	}

	for _, sub := range p.subpatterns {
		if !sub.optional {
			return bestMatch{}, nil
		}
	}
	empty := make([][]interface{}, len(p.subpatterns))
	for i := range empty {
		empty[i] = []interface{}{}
	}
	return bestMatch{found: true, groups: empty, nextPos: 0, total: 0}, nil
}

func appendValue(group []interface{}, v interface{}) []interface{} {
	out := make([]interface{}, len(group), len(group)+1)
	copy(out, group)
	return append(out, v)
}

func cloneGroups(groups [][]interface{}) [][]interface{} {
	out := make([][]interface{}, len(groups))
	copy(out, groups)
	return out
}

// padGroups returns a copy of groups with every nil entry replaced by an
// empty group: trailing sub-patterns past sp that the winning state never
// reached, and optional sub-patterns skipped before it. sp is not used.
func padGroups(groups [][]interface{}, sp, n int) [][]interface{} {
	out := cloneGroups(groups)
	for i := 0; i < n; i++ {
		if out[i] == nil {
			out[i] = []interface{}{}
		}
	}
	return out
}

package finder

// MatchResult holds the groups captured by a successful Pattern match.
// MatchResult values are immutable; a Scanner hands one out per successful
// Scan/ScanUntil call and otherwise keeps no reference to it.
type MatchResult struct {
	// groups has one entry per capturing sub-pattern, in the sub-patterns'
	// original order.
	groups [][]interface{}
	names  map[string]int // name -> index into groups
}

// newMatchResult projects the non-capturing sub-patterns' groups out of
// full.
func newMatchResult(p *Pattern, full [][]interface{}) *MatchResult {
	groups := make([][]interface{}, 0, len(full))
	names := make(map[string]int)

	for i, sub := range p.subpatterns {
		if !sub.capture {
			continue
		}
		idx := len(groups)
		g := full[i]
		if g == nil {
			g = []interface{}{}
		}
		groups = append(groups, g)
		if sub.name != "" {
			names[sub.name] = idx
		}
	}

	return &MatchResult{groups: groups, names: names}
}

// Len returns the number of captured groups.
func (m *MatchResult) Len() int { return len(m.groups) }

// At returns the group addressed by id, an int index or a string name. It
// returns (nil, false) if id is out of range or names no captured group.
func (m *MatchResult) At(id interface{}) ([]interface{}, bool) {
	switch v := id.(type) {
	case int:
		if v < 0 || v >= len(m.groups) {
			return nil, false
		}
		return m.groups[v], true
	case string:
		idx, ok := m.names[v]
		if !ok {
			return nil, false
		}
		return m.groups[idx], true
	default:
		return nil, false
	}
}

// Names returns the names of the captured groups that were given one, in
// no particular order.
func (m *MatchResult) Names() []string {
	out := make([]string, 0, len(m.names))
	for name := range m.names {
		out = append(out, name)
	}
	return out
}

// Flat returns every matched value across all captured groups, in input
// order.
func (m *MatchResult) Flat() []interface{} {
	var out []interface{}
	for _, g := range m.groups {
		out = append(out, g...)
	}
	return out
}

// First returns the first matched value across all captured groups, and
// false if the match captured nothing at all (every group is empty).
func (m *MatchResult) First() (interface{}, bool) {
	for _, g := range m.groups {
		if len(g) > 0 {
			return g[0], true
		}
	}
	return nil, false
}

// Last returns the last matched value across all captured groups, and
// false if the match captured nothing at all.
func (m *MatchResult) Last() (interface{}, bool) {
	for i := len(m.groups) - 1; i >= 0; i-- {
		g := m.groups[i]
		if len(g) > 0 {
			return g[len(g)-1], true
		}
	}
	return nil, false
}

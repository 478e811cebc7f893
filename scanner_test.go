package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abPattern() *Pattern {
	return New(func(p *Pattern) {
		p.ValueEq("a")
		p.ValueEq("b")
	})
}

func TestScannerScanAdvancesOnSuccessAndStaysPutOnMiss(t *testing.T) {
	p := abPattern()
	sc := NewScanner(p, vals("a", "b", "x", "a", "b"))

	res, ok, err := sc.Scan()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []interface{}{"a"}, groupOrNil(res, 0))
	assert.Equal(t, 2, sc.Pos())

	_, ok, err = sc.Scan()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, sc.Pos()) // unchanged on miss
}

func groupOrNil(m *MatchResult, idx int) []interface{} {
	g, _ := m.At(idx)
	return g
}

func TestScannerScanUntilFindsNextMatch(t *testing.T) {
	p := abPattern()
	sc := NewScanner(p, vals("x", "y", "a", "b", "z"))

	res, start, ok, err := sc.ScanUntil()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, sc.Pos())
	assert.Equal(t, []interface{}{"a"}, groupOrNil(res, 0))
}

func TestScannerScanUntilNoMatchLeavesPosUnchanged(t *testing.T) {
	p := abPattern()
	sc := NewScanner(p, vals("x", "y", "z"))

	_, start, ok, err := sc.ScanUntil()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, -1, start)
	assert.Equal(t, 0, sc.Pos())
}

func TestScannerScanAll(t *testing.T) {
	p := abPattern()
	sc := NewScanner(p, vals("a", "b", "x", "a", "b"))

	results, err := sc.ScanAll()
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestScannerResetRewindsCursor(t *testing.T) {
	p := abPattern()
	sc := NewScanner(p, vals("a", "b"))

	_, _, err := sc.Scan()
	require.NoError(t, err)
	assert.Equal(t, 2, sc.Pos())

	sc.Reset()
	assert.Equal(t, 0, sc.Pos())
	sc.Reset()
	assert.Equal(t, 0, sc.Pos())
}

func TestScannerEovOnEmptySequence(t *testing.T) {
	p := abPattern()
	sc := NewScanner(p, vals())
	assert.True(t, sc.Eov())
}

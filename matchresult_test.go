package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchResultFlatFirstLast(t *testing.T) {
	p := New(func(p *Pattern) {
		p.ValueEq(1)
		p.LeastOneValueEq(2)
	})

	res, _, err := p.MatchWithPosition(vals(1, 2, 2, 2))
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, []interface{}{1, 2, 2, 2}, res.Flat())

	first, ok := res.First()
	require.True(t, ok)
	assert.Equal(t, 1, first)

	last, ok := res.Last()
	require.True(t, ok)
	assert.Equal(t, 2, last)
}

func TestMatchResultFirstLastOnEmptyMatch(t *testing.T) {
	p := New(func(p *Pattern) {
		p.ValueEq(1, Optional())
	})

	res, _, err := p.MatchWithPosition(vals(9))
	require.NoError(t, err)
	require.NotNil(t, res)

	_, ok := res.First()
	assert.False(t, ok)
	_, ok = res.Last()
	assert.False(t, ok)
}

func TestMatchResultNames(t *testing.T) {
	p := New(func(p *Pattern) {
		p.ValueEq(1, Name("a"))
		p.ValueEq(2, Name("b"))
	})

	res, _, err := p.MatchWithPosition(vals(1, 2))
	require.NoError(t, err)
	require.NotNil(t, res)

	names := res.Names()
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestMatchResultAtOutOfRangeIndex(t *testing.T) {
	p := New(func(p *Pattern) { p.ValueEq(1) })
	res, _, err := p.MatchWithPosition(vals(1))
	require.NoError(t, err)
	require.NotNil(t, res)

	_, ok := res.At(99)
	assert.False(t, ok)
	_, ok = res.At(-1)
	assert.False(t, ok)
}

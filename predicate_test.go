package finder

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnyMatchesEverythingIncludingNil(t *testing.T) {
	p := Any()
	assert.True(t, p(1, nil))
	assert.True(t, p(nil, nil))
}

func TestValueEqFudgesNumericKinds(t *testing.T) {
	p := ValueEq(3)
	assert.True(t, p(3, nil))
	assert.True(t, p(int32(3), nil))
	assert.True(t, p(3.0, nil))
	assert.False(t, p(4, nil))
}

func TestValueNeq(t *testing.T) {
	p := ValueNeq(3)
	assert.False(t, p(3, nil))
	assert.True(t, p(4, nil))
}

func TestValueIn(t *testing.T) {
	p := ValueIn(1, 2, 3)
	assert.True(t, p(2, nil))
	assert.True(t, p(2.0, nil))
	assert.False(t, p(9, nil))
	assert.False(t, ValueIn()(1, nil))
}

func TestValueInRangeNumeric(t *testing.T) {
	p := ValueInRange(1, 10)
	assert.True(t, p(5, nil))
	assert.True(t, p(1, nil))
	assert.True(t, p(10, nil))
	assert.False(t, p(11, nil))
	assert.False(t, p("x", nil))
}

func TestValueInRangeLexical(t *testing.T) {
	p := ValueInRange("b", "x")
	assert.True(t, p("m", nil))
	assert.False(t, p("a", nil))
}

func TestValueOfTypeCheck(t *testing.T) {
	p := ValueOf("")
	assert.True(t, p("hello", nil))
	assert.False(t, p(1, nil))
	assert.False(t, p(nil, nil))
}

func TestPresentAbsent(t *testing.T) {
	present := Present()
	assert.True(t, present(1, nil))
	assert.True(t, present("x", nil))
	assert.False(t, present(nil, nil))
	assert.False(t, present("", nil))

	absent := Absent()
	assert.False(t, absent(1, nil))
	assert.True(t, absent(nil, nil))
	assert.True(t, absent("", nil))
}

func TestMatchRegexp(t *testing.T) {
	rx := regexp.MustCompile(`^[a-z]+\d+$`)
	p := MatchRegexp(rx)
	assert.True(t, p("abc123", nil))
	assert.False(t, p("123abc", nil))
	assert.False(t, p(123, nil))
}

func TestPredicateOfArities(t *testing.T) {
	ctx := &MatchContext{Matched: []interface{}{"m"}, Values: []interface{}{"v"}, Position: 2}

	p1, err := PredicateOf(func(v interface{}) bool { return v == "x" })
	require.NoError(t, err)
	assert.True(t, p1("x", ctx))

	p2, err := PredicateOf(func(v interface{}, matched []interface{}) bool {
		return len(matched) == 1
	})
	require.NoError(t, err)
	assert.True(t, p2("x", ctx))

	p3, err := PredicateOf(func(v interface{}, matched, values []interface{}) bool {
		return len(values) == 1
	})
	require.NoError(t, err)
	assert.True(t, p3("x", ctx))

	p4, err := PredicateOf(func(v interface{}, matched, values []interface{}, pos int) bool {
		return pos == 2
	})
	require.NoError(t, err)
	assert.True(t, p4("x", ctx))

	_, err = PredicateOf(42)
	var ae *ArityError
	require.ErrorAs(t, err, &ae)
}

package finder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScriptPredicateEvaluatesExpression(t *testing.T) {
	p := Script("value > 10")
	assert.True(t, p(15, &MatchContext{}))
	assert.False(t, p(5, &MatchContext{}))
}

func TestScriptPredicateSeesMatchedAndPosition(t *testing.T) {
	p := Script("matched.length == 2 && position == 3")
	ctx := &MatchContext{Matched: []interface{}{"a", "b"}, Position: 3}
	assert.True(t, p("anything", ctx))
}

func TestScriptPredicatePanicsOnBadSource(t *testing.T) {
	assert.Panics(t, func() { Script("(((") })
}

func TestInSchedulePanicsOnBadExpression(t *testing.T) {
	assert.Panics(t, func() { InSchedule("not a cron expression") })
}

func TestInScheduleMatchesNearFiring(t *testing.T) {
	p := InSchedule("0 * * * *") // fires hourly, on the hour
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, p(base.Add(10*time.Second), &MatchContext{}))
	assert.False(t, p(base.Add(-10*time.Second), &MatchContext{}))
	assert.False(t, p("not-a-time", &MatchContext{}))
}

func TestContainsAnyOfMatchesSubstring(t *testing.T) {
	p := ContainsAnyOf("err", "warn")
	assert.True(t, p("connection error detected", &MatchContext{}))
	assert.True(t, p("warning: low disk", &MatchContext{}))
	assert.False(t, p("all clear", &MatchContext{}))
	assert.False(t, p(42, &MatchContext{}))
}

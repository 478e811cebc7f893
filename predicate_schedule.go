package finder

import (
	"time"

	"github.com/gorhill/cronexpr"
)

// ScheduleWindow is the tolerance InSchedule uses when deciding whether a
// timestamp falls "at" a scheduled firing rather than merely "after" it.
const ScheduleWindow = time.Minute

// InSchedule builds a Predicate over time.Time-valued elements that
// reports whether the value lands within ScheduleWindow after the most
// recent firing of the cron schedule expr at or before that value: not
// "when does this fire next" but "did this value arrive during a scheduled
// window".
//
// InSchedule panics if expr does not parse — a malformed cron expression is
// a construction-time programmer error, matching Script's treatment of a
// malformed JS expression.
func InSchedule(expr string) Predicate {
	schedule, err := cronexpr.Parse(expr)
	if err != nil {
		panic("finder: InSchedule: " + err.Error())
	}

	return func(value interface{}, _ *MatchContext) bool {
		t, ok := asTime(value)
		if !ok {
			return false
		}
		prev := lastFiringBefore(schedule, t)
		if prev.IsZero() {
			return false
		}
		return !t.Before(prev) && t.Before(prev.Add(ScheduleWindow))
	}
}

func asTime(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	default:
		return time.Time{}, false
	}
}

// lastFiringBefore walks the schedule forward from a 24-hour-earlier anchor
// to find the most recent firing at or before t, since cronexpr only
// exposes forward iteration. Schedules that fire less than once a day find
// no firing inside the lookback and report the zero time.
func lastFiringBefore(schedule *cronexpr.Expression, t time.Time) time.Time {
	anchor := t.Add(-24 * time.Hour)
	last := time.Time{}
	for {
		next := schedule.Next(anchor)
		if next.IsZero() || next.After(t) {
			return last
		}
		last = next
		anchor = next
	}
}

package domain

import "time"

// RangeToken is a symbolic look-back range. One shared vocabulary is used by
// every query operation; no endpoint accepts a different set.
type RangeToken string

const (
	Range7d  RangeToken = "7d"
	Range30d RangeToken = "30d"
	Range90d RangeToken = "90d"
)

// DayKeyFormat is the calendar-day bucket key layout.
const DayKeyFormat = "2006-01-02"

// Window is the concrete resolution of a range token against a reference
// instant: an inclusive, contiguous, ascending run of day keys. Computed once
// per query and immutable afterwards.
type Window struct {
	Range      RangeToken
	StartDate  time.Time // midnight in the engine's time zone
	EndDate    time.Time // midnight, inclusive (the current, partial day)
	BucketKeys []string  // ascending day keys, StartDate..EndDate
}

// FetchUpperBound is the exclusive upper timestamp for the event fetch:
// midnight after the last day of the window.
func (w Window) FetchUpperBound() time.Time {
	return w.EndDate.AddDate(0, 0, 1)
}

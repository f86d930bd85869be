package usecase

import (
	"time"

	"marketing-rollup-service/internal/rollup/core/domain"
)

// resolveWindow turns a range token into a concrete day-key sequence.
//
// Policy: the still-accumulating current day is included. For a token of N
// days, end = floor_to_day(now) and start = end - N days, both inclusive, so
// the window holds N+1 contiguous buckets with today's partial data reduced
// by the same formula as every other day.
func (uc *RollupUseCase) resolveWindow(token domain.RangeToken) (domain.Window, error) {
	days, ok := uc.cfg.Ranges[token]
	if !ok {
		return domain.Window{}, ErrInvalidRange
	}

	end := floorToDay(uc.cfg.Now(), uc.cfg.Location)
	start := end.AddDate(0, 0, -days)

	keys := make([]string, 0, days+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(domain.DayKeyFormat))
	}

	return domain.Window{
		Range:      token,
		StartDate:  start,
		EndDate:    end,
		BucketKeys: keys,
	}, nil
}

func floorToDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

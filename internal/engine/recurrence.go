package engine

import (
	"time"

	"focusday/internal/model"
)

// IsActiveOn decides whether an instance of the template is visible and
// actionable on the given calendar date. All comparisons are on the date
// portion only; time-of-day and zone offsets never influence the result.
//
// Rules:
//   - never active before StartDate;
//   - non-recurring with an EndDate: active inside [StartDate, EndDate]
//     (StartDate == EndDate degenerates to exactly one day, the shape
//     produced for materialized per-day instances);
//   - non-recurring without an EndDate: active only on StartDate itself;
//   - recurring: active on every date from StartDate up to EndDate (or
//     open-ended). RecurrenceDays is intentionally not consulted here; the
//     selected weekdays drive per-day instance generation, not visibility.
func IsActiveOn(t *model.TaskTemplate, date time.Time) bool {
	d := model.DateOf(date)
	start := model.DateOf(t.StartDate)
	if d.Before(start) {
		return false
	}

	if !t.IsRecurring {
		if t.EndDate != nil {
			return !d.After(model.DateOf(*t.EndDate))
		}
		return d.Equal(start)
	}

	if t.EndDate != nil && d.After(model.DateOf(*t.EndDate)) {
		return false
	}
	return true
}

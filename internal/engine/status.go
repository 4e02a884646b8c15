package engine

// DayStatus is the calendar indicator for a date.
type DayStatus int

const (
	// StatusNone means nothing was scheduled; no indicator is rendered.
	StatusNone DayStatus = iota
	// StatusFailed means everything scheduled was missed.
	StatusFailed
	// StatusPartial means some but not all of the day succeeded.
	StatusPartial
	// StatusPerfect means every MIT was done and every MET avoided.
	StatusPerfect
)

func (s DayStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusFailed:
		return "failed"
	case StatusPartial:
		return "partial"
	case StatusPerfect:
		return "perfect"
	default:
		return "unknown"
	}
}

// MIT completion carries most of the weight in the combined day score.
const (
	mitWeight = 0.7
	metWeight = 0.3
)

// Classify maps a day's aggregate into its calendar status. Only an exact
// 0 is failed and only an exact 1 is perfect; everything strictly between,
// 0.99 included, is partial.
func Classify(agg DayAggregate) DayStatus {
	if !agg.HasActivity {
		return StatusNone
	}

	var score float64
	switch {
	case agg.TotalMits > 0 && agg.TotalMets > 0:
		mit := float64(agg.MitsCompleted) / float64(agg.TotalMits)
		met := float64(agg.MetsAvoided) / float64(agg.TotalMets)
		score = mitWeight*mit + metWeight*met
	case agg.TotalMits > 0:
		score = float64(agg.MitsCompleted) / float64(agg.TotalMits)
	case agg.TotalMets > 0:
		score = float64(agg.MetsAvoided) / float64(agg.TotalMets)
	}

	switch {
	case score == 0:
		return StatusFailed
	case score == 1:
		return StatusPerfect
	default:
		return StatusPartial
	}
}

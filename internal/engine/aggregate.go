package engine

// DayAggregate folds a date's active instances and completion facts into the
// counts the classifier and UI need.
type DayAggregate struct {
	MitsCompleted int
	TotalMits     int
	MetsAvoided   int
	TotalMets     int
	HasActivity   bool
}

// AggregateDay combines the active MIT/MET instance ids for a date with the
// sets of completed MITs and checked (occurred) METs. A MET counts as
// avoided when it was active but never checked.
func AggregateDay(activeMITs, activeMETs []string, completedMITs, checkedMETs map[string]struct{}) DayAggregate {
	agg := DayAggregate{
		TotalMits: len(activeMITs),
		TotalMets: len(activeMETs),
	}

	for _, id := range activeMITs {
		if _, ok := completedMITs[id]; ok {
			agg.MitsCompleted++
		}
	}

	checked := 0
	for _, id := range activeMETs {
		if _, ok := checkedMETs[id]; ok {
			checked++
		}
	}
	agg.MetsAvoided = agg.TotalMets - checked

	agg.HasActivity = agg.TotalMits > 0 || agg.TotalMets > 0
	return agg
}

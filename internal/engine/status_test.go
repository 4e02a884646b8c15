package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		agg  DayAggregate
		want DayStatus
	}{
		{
			name: "no activity renders nothing",
			agg:  DayAggregate{},
			want: StatusNone,
		},
		{
			name: "all mits done and no mets is perfect",
			agg:  DayAggregate{MitsCompleted: 2, TotalMits: 2, HasActivity: true},
			want: StatusPerfect,
		},
		{
			name: "all mits done and all mets avoided is perfect",
			agg:  DayAggregate{MitsCompleted: 3, TotalMits: 3, MetsAvoided: 2, TotalMets: 2, HasActivity: true},
			want: StatusPerfect,
		},
		{
			name: "avoided met alone is worth 0.3",
			agg:  DayAggregate{TotalMits: 1, MetsAvoided: 1, TotalMets: 1, HasActivity: true},
			want: StatusPartial,
		},
		{
			name: "nothing done nothing avoided is failed",
			agg:  DayAggregate{TotalMits: 2, TotalMets: 1, HasActivity: true},
			want: StatusFailed,
		},
		{
			name: "all mets checked with no mits is failed",
			agg:  DayAggregate{MetsAvoided: 0, TotalMets: 3, HasActivity: true},
			want: StatusFailed,
		},
		{
			name: "only mets all avoided is perfect",
			agg:  DayAggregate{MetsAvoided: 3, TotalMets: 3, HasActivity: true},
			want: StatusPerfect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.agg))
		})
	}
}

// Only an exact 0 fails and only an exact 1 is perfect; any completion
// strictly between, however close to the ends, is partial.
func TestClassifyExactThresholds(t *testing.T) {
	t.Run("99 of 100 mits is still partial", func(t *testing.T) {
		agg := DayAggregate{MitsCompleted: 99, TotalMits: 100, HasActivity: true}
		assert.Equal(t, StatusPartial, Classify(agg))
	})

	t.Run("1 of 100 mits is partial not failed", func(t *testing.T) {
		agg := DayAggregate{MitsCompleted: 1, TotalMits: 100, HasActivity: true}
		assert.Equal(t, StatusPartial, Classify(agg))
	})

	t.Run("full mits but one checked met is partial", func(t *testing.T) {
		agg := DayAggregate{MitsCompleted: 2, TotalMits: 2, MetsAvoided: 1, TotalMets: 2, HasActivity: true}
		assert.Equal(t, StatusPartial, Classify(agg))
	})
}

// Classify is total: every combination of small counts yields one of the
// four statuses, and none occurs exactly when there was no activity.
func TestClassifyTotality(t *testing.T) {
	for totalMits := 0; totalMits <= 4; totalMits++ {
		for done := 0; done <= totalMits; done++ {
			for totalMets := 0; totalMets <= 4; totalMets++ {
				for avoided := 0; avoided <= totalMets; avoided++ {
					agg := DayAggregate{
						MitsCompleted: done,
						TotalMits:     totalMits,
						MetsAvoided:   avoided,
						TotalMets:     totalMets,
						HasActivity:   totalMits > 0 || totalMets > 0,
					}
					got := Classify(agg)
					assert.Contains(t, []DayStatus{StatusNone, StatusFailed, StatusPartial, StatusPerfect}, got)
					assert.Equal(t, !agg.HasActivity, got == StatusNone, "aggregate %+v", agg)
				}
			}
		}
	}
}

func TestDayStatusString(t *testing.T) {
	assert.Equal(t, "none", StatusNone.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "partial", StatusPartial.String())
	assert.Equal(t, "perfect", StatusPerfect.String())
}

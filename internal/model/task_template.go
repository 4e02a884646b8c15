package model

import "time"

// TaskKind distinguishes the two daily task lists.
type TaskKind string

const (
	// KindMIT is a "Most Important Task": a positive task to complete.
	KindMIT TaskKind = "mit"
	// KindMET is a behavior the user wants to avoid; checking one records
	// that it occurred, i.e. a failure to avoid it.
	KindMET TaskKind = "met"
)

// Priority applies to MIT templates only.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TimeEstimate is the rough effort bucket shown next to a MIT.
type TimeEstimate string

const (
	Estimate15Min TimeEstimate = "15min"
	Estimate30Min TimeEstimate = "30min"
	Estimate1H    TimeEstimate = "1h"
	Estimate2H    TimeEstimate = "2h"
	Estimate3HUp  TimeEstimate = "3h+"
)

// RecurrenceDays holds selected ISO weekdays, Monday=1 .. Sunday=7.
type RecurrenceDays []int

// Contains reports whether the ISO weekday is selected.
func (r RecurrenceDays) Contains(isoWeekday int) bool {
	for _, d := range r {
		if d == isoWeekday {
			return true
		}
	}
	return false
}

// ISOWeekday converts time.Weekday (Sunday=0) to ISO numbering (Monday=1).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// MaxTemplateTextLen caps the free-form task text.
const MaxTemplateTextLen = 200

// TaskTemplate is the recurring or one-off definition of a daily task,
// independent of any specific date. Templates are soft-deleted (Active=false)
// so historical completion records keep resolving.
type TaskTemplate struct {
	ID             string   `gorm:"primaryKey"`
	OwnerID        string   `gorm:"index"`
	Kind           TaskKind `gorm:"index"`
	Text           string
	Priority       Priority       // MIT only
	EstimatedTime  TimeEstimate   // MIT only
	IsRecurring    bool           `gorm:"default:false"`
	RecurrenceDays RecurrenceDays `gorm:"serializer:json"`
	StartDate      time.Time      `gorm:"type:date;index:idx_generated_per_day,unique"`
	EndDate        *time.Time     `gorm:"type:date"`
	Active         bool           `gorm:"default:true"`
	// DeactivatedAt records when a soft delete happened, so historical
	// aggregation can keep counting the template for dates before it.
	DeactivatedAt *time.Time
	// GeneratedFrom links a materialized single-day instance back to the
	// recurring template it was generated from. Unique per (parent, date).
	GeneratedFrom *string `gorm:"index:idx_generated_per_day,unique"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsGenerated reports whether the template is a materialized per-day
// instance rather than a user-created one.
func (t *TaskTemplate) IsGenerated() bool {
	return t.GeneratedFrom != nil && *t.GeneratedFrom != ""
}

package model

import "time"

// CompletionRecord marks a task as done (MIT) or occurred (MET) on a date.
// Existence of the row is the "true" state; unsetting deletes the row, so no
// explicit false record is ever stored. The (owner, task, date) key is unique
// to keep set operations idempotent under races.
type CompletionRecord struct {
	ID          uint      `gorm:"primaryKey"`
	OwnerID     string    `gorm:"index:idx_completion_key,unique"`
	TaskID      string    `gorm:"index:idx_completion_key,unique"`
	Date        time.Time `gorm:"type:date;index:idx_completion_key,unique"`
	CompletedAt time.Time
}

package model

import "time"

// DailyScoreEntry is the per-(owner, date) running score, created lazily on
// first read or write for a date and never deleted. TasksCompleted and
// TotalTasks count generic (non-MIT/MET) task progress for the day.
type DailyScoreEntry struct {
	ID             uint      `gorm:"primaryKey"`
	OwnerID        string    `gorm:"index:idx_daily_score_key,unique"`
	Date           time.Time `gorm:"type:date;index:idx_daily_score_key,unique"`
	Score          int
	TasksCompleted int
	TotalTasks     int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

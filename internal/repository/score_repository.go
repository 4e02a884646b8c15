package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"focusday/internal/model"
)

// ScoreRepository stores the per-(owner, date) running score rows.
type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Find returns the score row for the key, or nil when none exists yet.
func (r *ScoreRepository) Find(ctx context.Context, ownerID string, date time.Time) (*model.DailyScoreEntry, error) {
	var entry model.DailyScoreEntry
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND date = ?", ownerID, model.DateOf(date)).
		First(&entry).Error
	switch {
	case err == nil:
		return &entry, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find score: %w", err)
	}
}

// Create inserts a fresh row for the key. gorm.ErrDuplicatedKey passes
// through untouched so callers can detect a lost concurrent-creation race.
func (r *ScoreRepository) Create(ctx context.Context, entry *model.DailyScoreEntry) error {
	entry.Date = model.DateOf(entry.Date)
	return r.db.WithContext(ctx).Create(entry).Error
}

// Save persists updated counters on an existing row.
func (r *ScoreRepository) Save(ctx context.Context, entry *model.DailyScoreEntry) error {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}
